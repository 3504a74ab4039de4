package actortest

import (
	"sort"
	"sync"

	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
)

type storedBlob struct {
	info   codec.Blob
	chunks map[uint64][]byte
}

// ObjectStore is an in-memory object store satisfying the
// actorsdk.ObjectStore contract, including the empty-ID sentinel for
// missing objects.
type ObjectStore struct {
	mu         sync.Mutex
	containers map[string]map[string]*storedBlob
}

// NewObjectStore returns an empty in-memory object store.
func NewObjectStore() *ObjectStore {
	return &ObjectStore{containers: make(map[string]map[string]*storedBlob)}
}

func (o *ObjectStore) CreateContainer(name string) (codec.Container, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.containers[name] == nil {
		o.containers[name] = make(map[string]*storedBlob)
	}
	return codec.Container{ID: name}, nil
}

func (o *ObjectStore) RemoveContainer(name string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.containers, name)
	return nil
}

func (o *ObjectStore) RemoveObject(id, container string) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.containers[container], id)
	return nil
}

func (o *ObjectStore) ListObjects(container string) (codec.BlobList, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	blobs := make([]codec.Blob, 0, len(o.containers[container]))
	for _, b := range o.containers[container] {
		blobs = append(blobs, b.info)
	}
	sort.Slice(blobs, func(i, j int) bool { return blobs[i].ID < blobs[j].ID })
	return codec.BlobList{Blobs: blobs}, nil
}

func (o *ObjectStore) GetBlobInfo(container, id string) (codec.Blob, bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	b, ok := o.containers[container][id]
	if !ok {
		// Mirrors the host sentinel: absence is a successful empty result.
		return codec.Blob{}, false, nil
	}
	return b.info, true, nil
}

func (o *ObjectStore) StartUpload(blob codec.Blob, chunkSize, totalBytes uint64) (codec.Transfer, error) {
	if chunkSize == 0 {
		return codec.Transfer{}, errors.New(errors.CapBlobstore, errors.KindMisc).
			Op(codec.OpStartUpload).
			Detail("chunk size cannot be zero").
			Build()
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.containers[blob.Container] == nil {
		o.containers[blob.Container] = make(map[string]*storedBlob)
	}
	o.containers[blob.Container][blob.ID] = &storedBlob{
		info:   codec.Blob{ID: blob.ID, Container: blob.Container, ByteSize: totalBytes},
		chunks: make(map[uint64][]byte),
	}
	return codec.Transfer{
		BlobID:      blob.ID,
		Container:   blob.Container,
		ChunkSize:   chunkSize,
		TotalSize:   totalBytes,
		TotalChunks: totalBytes / chunkSize,
	}, nil
}

func (o *ObjectStore) UploadChunk(transfer codec.Transfer, sequenceNo uint64, bytes []byte) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	b, ok := o.containers[transfer.Container][transfer.BlobID]
	if !ok {
		return errors.New(errors.CapBlobstore, errors.KindHost).
			Op(codec.OpUploadChunk).
			Detail("no upload started for %s/%s", transfer.Container, transfer.BlobID).
			Build()
	}
	b.chunks[sequenceNo] = append([]byte(nil), bytes...)
	return nil
}

func (o *ObjectStore) StartDownload(blob codec.Blob, chunkSize uint64) (codec.Transfer, error) {
	if chunkSize == 0 {
		return codec.Transfer{}, errors.New(errors.CapBlobstore, errors.KindMisc).
			Op(codec.OpStartDownload).
			Detail("chunk size cannot be zero").
			Build()
	}
	o.mu.Lock()
	defer o.mu.Unlock()
	b, ok := o.containers[blob.Container][blob.ID]
	if !ok {
		return codec.Transfer{}, errors.New(errors.CapBlobstore, errors.KindHost).
			Op(codec.OpStartDownload).
			Detail("no such blob %s/%s", blob.Container, blob.ID).
			Build()
	}
	return codec.Transfer{
		BlobID:      blob.ID,
		Container:   blob.Container,
		ChunkSize:   chunkSize,
		TotalSize:   b.info.ByteSize,
		TotalChunks: b.info.ByteSize / chunkSize,
	}, nil
}

// Chunk returns one uploaded chunk for assertions.
func (o *ObjectStore) Chunk(container, id string, sequenceNo uint64) ([]byte, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	b, ok := o.containers[container][id]
	if !ok {
		return nil, false
	}
	chunk, ok := b.chunks[sequenceNo]
	return chunk, ok
}
