package di

import (
	"gorm.io/gorm"

	"gochat/internal/chat/handler"
	"gochat/internal/chat/service"
	"gochat/internal/config"
	"gochat/internal/dbmongo"
	"gochat/internal/media"
	"gochat/internal/member"
	"gochat/internal/realtime"
)

// Application is the assembled chat service: every component the bootstrap
// needs to mount routes and shut down cleanly.
type Application struct {
	Config       *config.Config
	DB           *gorm.DB
	Mongo        *dbmongo.MongoClient
	Hub          *realtime.Hub
	Synchronizer *service.Synchronizer
	Messages     *handler.MessageHandler
	Members      *member.Handler
	Media        *media.Handler
	WS           *realtime.WSHandler
}
