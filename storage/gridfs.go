package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var _ Store = (*GridFSStore)(nil)

// GridFSStore delegates chunking to a GridFS bucket. The blob key is used as
// the GridFS file id.
type GridFSStore struct {
	client *mongo.Client
	bucket *gridfs.Bucket
}

// NewGridFSStore connects to MongoDB and opens the named bucket.
func NewGridFSStore(ctx context.Context, uri, database, bucketName string) (*GridFSStore, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	bucket, err := gridfs.NewBucket(client.Database(database), options.GridFSBucket().SetName(bucketName))
	if err != nil {
		client.Disconnect(ctx)
		return nil, err
	}
	return &GridFSStore{client: client, bucket: bucket}, nil
}

// Put uploads r under key. The driver's upload takes no context, so ctx is
// checked between chunk reads instead.
func (s *GridFSStore) Put(ctx context.Context, key string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	cr := &countingReader{r: &contextReader{ctx: ctx, r: r}}
	if err := s.bucket.UploadFromStreamWithID(key, key, cr); err != nil {
		return 0, err
	}
	return cr.n, nil
}

func (s *GridFSStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stream, err := s.bucket.OpenDownloadStream(key)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return struct {
		io.Reader
		io.Closer
	}{&contextReader{ctx: ctx, r: stream}, stream}, nil
}

func (s *GridFSStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.DeleteContext(ctx, key)
	if errors.Is(err, gridfs.ErrFileNotFound) {
		return ErrNotFound
	}
	return err
}

// Close disconnects the underlying client.
func (s *GridFSStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
