package dbmongo

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"gochat/internal/common"
)

// MediaStorage stores message attachments in GridFS. The returned reference
// is the hex ObjectID of the stored file and ends up as the content of a
// media message.
type MediaStorage struct {
	gridFS *gridfs.Bucket
}

var _ common.ObjectStore = (*MediaStorage)(nil)

func NewMediaStorage(mongoClient *MongoClient) *MediaStorage {
	return &MediaStorage{
		gridFS: mongoClient.GridFS,
	}
}

func (ms *MediaStorage) Put(ctx context.Context, data []byte, name string) (string, error) {
	return ms.upload(name, bytes.NewReader(data))
}

func (ms *MediaStorage) PutEncoded(ctx context.Context, encoded, name, ext string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", common.InvalidArgumentf("decode file content")
	}
	return ms.upload(name+"."+ext, bytes.NewReader(data))
}

func (ms *MediaStorage) Delete(ctx context.Context, ref string) error {
	objectID, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return fmt.Errorf("invalid file ref: %w", err)
	}
	return ms.gridFS.Delete(objectID)
}

// Download streams a stored file back; used by the media serving endpoint.
func (ms *MediaStorage) Download(ctx context.Context, ref string) (io.Reader, string, int64, error) {
	objectID, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil, "", 0, fmt.Errorf("invalid file ref: %w", err)
	}

	stream, err := ms.gridFS.OpenDownloadStream(objectID)
	if err != nil {
		return nil, "", 0, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	return stream, fileInfo.Name, fileInfo.Length, nil
}

func (ms *MediaStorage) upload(filename string, content io.Reader) (string, error) {
	metadata := bson.M{
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := ms.gridFS.OpenUploadStream(filename, opts)
	if err != nil {
		return "", fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	if _, err := io.Copy(stream, content); err != nil {
		return "", fmt.Errorf("file copy failed: %w", err)
	}

	return stream.FileID.(primitive.ObjectID).Hex(), nil
}
