package dbmongo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlobStore holds attachment payloads in GridFS, keyed by the generated
// stored name recorded on the matching file_refs row.
type BlobStore struct {
	gridFS *gridfs.Bucket
}

func NewBlobStore(mongoClient *MongoClient) *BlobStore {
	return &BlobStore{gridFS: mongoClient.GridFS}
}

// Blob describes a stored payload.
type Blob struct {
	StoredName string    `json:"stored_name"`
	Size       int64     `json:"size"`
	MimeType   string    `json:"mime_type"`
	UploadedBy uint64    `json:"uploaded_by"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// Put streams content into GridFS under storedName and returns its size.
func (bs *BlobStore) Put(ctx context.Context, storedName, mimeType string, uploaderID uint64, content io.Reader) (int64, error) {
	metadata := bson.M{
		"mime_type":   mimeType,
		"uploaded_by": uploaderID,
		"uploaded_at": time.Now(),
	}

	opts := options.GridFSUpload().SetMetadata(metadata)
	stream, err := bs.gridFS.OpenUploadStream(storedName, opts)
	if err != nil {
		return 0, fmt.Errorf("upload failed: %w", err)
	}
	defer stream.Close()

	size, err := io.Copy(stream, content)
	if err != nil {
		return 0, fmt.Errorf("file copy failed: %w", err)
	}
	return size, nil
}

// Get opens a download stream for the blob stored under storedName.
func (bs *BlobStore) Get(ctx context.Context, storedName string) (io.ReadCloser, *Blob, error) {
	stream, err := bs.gridFS.OpenDownloadStreamByName(storedName)
	if err != nil {
		return nil, nil, fmt.Errorf("download failed: %w", err)
	}

	fileInfo := stream.GetFile()
	var metadata bson.M
	if fileInfo.Metadata != nil {
		_ = bson.Unmarshal(fileInfo.Metadata, &metadata)
	}

	blob := &Blob{
		StoredName: fileInfo.Name,
		Size:       fileInfo.Length,
		MimeType:   metaString(metadata, "mime_type"),
		UploadedAt: fileInfo.UploadDate,
	}
	return stream, blob, nil
}

// Delete removes every revision stored under storedName.
func (bs *BlobStore) Delete(ctx context.Context, storedName string) error {
	cursor, err := bs.gridFS.Find(bson.M{"filename": storedName})
	if err != nil {
		return fmt.Errorf("blob lookup failed: %w", err)
	}
	defer cursor.Close(ctx)

	var found bool
	for cursor.Next(ctx) {
		var doc struct {
			ID primitive.ObjectID `bson:"_id"`
		}
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("blob decode failed: %w", err)
		}
		if err := bs.gridFS.Delete(doc.ID); err != nil {
			return fmt.Errorf("blob delete failed: %w", err)
		}
		found = true
	}
	if !found {
		return fmt.Errorf("blob %q not found", storedName)
	}
	return nil
}

func metaString(m bson.M, key string) string {
	if m == nil {
		return ""
	}
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}
