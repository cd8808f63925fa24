package ports

import (
	"github.com/voltlab/strata/internal/core/domain"
)

// CheckpointStore is one open checkpoint container: a scalar header plus a
// group per level holding the box list, the driver's tagged-cell mask and
// opaque solver blobs. The container is a non-reentrant external resource; no
// two writes may be in flight concurrently.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CheckpointStore interface {
	// PutHeader writes the scalar metadata.
	PutHeader(h domain.CheckpointHeader) error

	// Header reads the scalar metadata.
	Header() (domain.CheckpointHeader, error)

	// PutBoxes writes a level's box list.
	PutBoxes(level int, boxes []domain.Box) error

	// Boxes reads a level's box list. Returns domain.ErrCheckpointFormat
	// if the level group is missing.
	Boxes(level int) ([]domain.Box, error)

	// PutTagMask writes the driver's tagged-cell mask for a level.
	PutTagMask(level int, mask []domain.MaskPatch) error

	// TagMask reads the driver's tagged-cell mask for a level.
	TagMask(level int) ([]domain.MaskPatch, error)

	// PutBlob stores an opaque collaborator record under a key scoped to a
	// level group.
	PutBlob(level int, key string, blob []byte) error

	// Blob retrieves an opaque collaborator record.
	Blob(level int, key string) ([]byte, error)

	// Close flushes and releases the container.
	Close() error
}

// CheckpointFactory opens checkpoint containers by path.
type CheckpointFactory interface {
	// Create opens a fresh container for writing, truncating any previous
	// content at path.
	Create(path string) (CheckpointStore, error)

	// Open opens an existing container for reading.
	Open(path string) (CheckpointStore, error)
}
