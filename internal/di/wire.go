//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"gochat/internal/chat/handler"
	"gochat/internal/chat/service"
	"gochat/internal/common"
	"gochat/internal/config"
	"gochat/internal/dbmongo"
	"gochat/internal/dbmysql"
	"gochat/internal/media"
	"gochat/internal/member"
	"gochat/internal/realtime"
)

// InitializeApplication wires the whole chat service graph. The body is a
// declaration only, wire generates the real one.
func InitializeApplication(cfg *config.Config) (*Application, error) {
	wire.Build(
		dbmysql.NewMySQL,
		dbmongo.NewMongoConnection,
		dbmongo.NewMessageRepository,
		dbmongo.NewConversationRepository,
		dbmongo.NewMediaStorage,
		dbmysql.NewMemberRepository,
		realtime.NewHub,
		realtime.NewWSHandler,
		service.NewPresenter,
		service.NewSynchronizer,
		service.NewMessageService,
		member.NewMemberService,
		member.NewHandler,
		media.NewHandler,
		handler.NewMessageHandler,
		wire.Bind(new(common.ObjectStore), new(*dbmongo.MediaStorage)),
		wire.Bind(new(common.Broadcaster), new(*realtime.Hub)),
		wire.Bind(new(member.Notifier), new(service.ChatService)),
		wire.Bind(new(member.HistoryCleaner), new(service.ChatService)),
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil
}
