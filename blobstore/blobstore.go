// Package blobstore is the client facade for a host-bound object store
// capability (wascc:blobstore).
//
// Uploads are driven by the actor: StartUpload computes a local Transfer
// plan, then the actor pushes each chunk with UploadChunk. Downloads are
// driven by the host: StartDownload returns the plan and the provider then
// delivers chunks as inbound ReceiveChunk operations through the dispatch
// table.
package blobstore

import (
	"github.com/wippyai/actor-sdk/codec"
	"github.com/wippyai/actor-sdk/errors"
	"github.com/wippyai/actor-sdk/hostcall"
)

// Store is a client bound to one object store provider instance.
type Store struct {
	binding string
	call    hostcall.Func
}

// Default returns an object store client on the default binding.
func Default() *Store {
	return Host(hostcall.DefaultBinding)
}

// Host returns an object store client on a named binding.
func Host(binding string) *Store {
	return New(binding, hostcall.Call)
}

// New returns an object store client with an explicit transport.
func New(binding string, call hostcall.Func) *Store {
	if binding == "" {
		binding = hostcall.DefaultBinding
	}
	return &Store{binding: binding, call: call}
}

func (s *Store) roundTrip(op string, req, resp any) error {
	payload, err := codec.Serialize(req)
	if err != nil {
		return errors.Serialization(errors.CapBlobstore, err)
	}
	out, err := s.call(s.binding, codec.CapIDBlobstore, op, payload)
	if err != nil {
		return errors.Host(errors.CapBlobstore, op, err)
	}
	if resp == nil {
		return nil
	}
	if err := codec.Deserialize(out, resp); err != nil {
		return errors.Serialization(errors.CapBlobstore, err)
	}
	return nil
}

func errZeroChunk(op string) error {
	return errors.New(errors.CapBlobstore, errors.KindMisc).
		Op(op).
		Detail("chunk size cannot be zero").
		Build()
}

// CreateContainer creates a named container and returns it.
func (s *Store) CreateContainer(name string) (codec.Container, error) {
	var resp codec.Container
	if err := s.roundTrip(codec.OpCreateContainer, codec.Container{ID: name}, &resp); err != nil {
		return codec.Container{}, err
	}
	return resp, nil
}

// RemoveContainer removes a container. Whether removal fails on a non-empty
// container is provider-specific.
func (s *Store) RemoveContainer(name string) error {
	return s.roundTrip(codec.OpRemoveContainer, codec.Container{ID: name}, nil)
}

// RemoveObject removes an object from a container.
func (s *Store) RemoveObject(id, container string) error {
	req := codec.Blob{ID: id, Container: container}
	return s.roundTrip(codec.OpRemoveObject, req, nil)
}

// ListObjects lists the objects in a container.
func (s *Store) ListObjects(container string) (codec.BlobList, error) {
	var resp codec.BlobList
	if err := s.roundTrip(codec.OpListObjects, codec.Container{ID: container}, &resp); err != nil {
		return codec.BlobList{}, err
	}
	return resp, nil
}

// GetBlobInfo fetches object metadata without the object bytes. The host
// signals a missing object with an empty blob ID; that sentinel is
// translated here into (zero Blob, false, nil) rather than an error.
func (s *Store) GetBlobInfo(container, id string) (codec.Blob, bool, error) {
	var resp codec.Blob
	req := codec.Blob{ID: id, Container: container}
	if err := s.roundTrip(codec.OpGetObjectInfo, req, &resp); err != nil {
		return codec.Blob{}, false, err
	}
	if resp.ID == "" {
		return codec.Blob{}, false, nil
	}
	return resp, true, nil
}

// StartUpload announces an upload and returns the chunking plan. The chunk
// size is a request; follow with one UploadChunk call per chunk. TotalChunks
// is floor(totalBytes / chunkSize); when totalBytes is not a multiple of
// chunkSize the trailing partial chunk is the caller's to send.
func (s *Store) StartUpload(blob codec.Blob, chunkSize, totalBytes uint64) (codec.Transfer, error) {
	if chunkSize == 0 {
		return codec.Transfer{}, errZeroChunk(codec.OpStartUpload)
	}
	transfer := codec.Transfer{
		BlobID:      blob.ID,
		Container:   blob.Container,
		ChunkSize:   chunkSize,
		TotalSize:   totalBytes,
		TotalChunks: totalBytes / chunkSize,
	}
	req := codec.FileChunk{
		SequenceNo: 0,
		Container:  blob.Container,
		ID:         blob.ID,
		ChunkSize:  chunkSize,
		TotalBytes: totalBytes,
	}
	if err := s.roundTrip(codec.OpStartUpload, req, nil); err != nil {
		return codec.Transfer{}, err
	}
	return transfer, nil
}

// UploadChunk sends one chunk of an announced upload. sequenceNo is the
// caller-tracked chunk offset; the facade does not auto-increment it. Each
// chunk call fails independently; on error the caller decides how much of
// the transfer to consider delivered.
func (s *Store) UploadChunk(transfer codec.Transfer, sequenceNo uint64, bytes []byte) error {
	req := codec.FileChunk{
		SequenceNo: sequenceNo,
		Container:  transfer.Container,
		ID:         transfer.BlobID,
		ChunkSize:  transfer.ChunkSize,
		TotalBytes: transfer.TotalSize,
		ChunkBytes: bytes,
	}
	return s.roundTrip(codec.OpUploadChunk, req, nil)
}

// StartDownload asks the provider to begin a chunked download of blob. On
// success the provider starts pushing ReceiveChunk operations into the
// actor's dispatch table; the returned Transfer is the plan for those
// inbound chunks, computed from the blob's recorded size.
func (s *Store) StartDownload(blob codec.Blob, chunkSize uint64) (codec.Transfer, error) {
	if chunkSize == 0 {
		return codec.Transfer{}, errZeroChunk(codec.OpStartDownload)
	}
	transfer := codec.Transfer{
		BlobID:      blob.ID,
		Container:   blob.Container,
		ChunkSize:   chunkSize,
		TotalSize:   blob.ByteSize,
		TotalChunks: blob.ByteSize / chunkSize,
	}
	req := codec.StreamRequest{
		Container: blob.Container,
		ID:        blob.ID,
		ChunkSize: chunkSize,
	}
	if err := s.roundTrip(codec.OpStartDownload, req, nil); err != nil {
		return codec.Transfer{}, err
	}
	return transfer, nil
}
