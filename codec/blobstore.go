package codec

// CapIDBlobstore is the capability ID for object store providers.
const CapIDBlobstore = "wascc:blobstore"

// Object store operation names. OpReceiveChunk is inbound: the host pushes
// download chunks into the actor through the dispatch table.
const (
	OpCreateContainer = "CreateContainer"
	OpRemoveContainer = "RemoveContainer"
	OpRemoveObject    = "RemoveObject"
	OpListObjects     = "ListObjects"
	OpUploadChunk     = "UploadChunk"
	OpStartDownload   = "StartDownload"
	OpStartUpload     = "StartUpload"
	OpReceiveChunk    = "ReceiveChunk"
	OpGetObjectInfo   = "GetObjectInfo"
)

// Container identifies a named container in the object store.
type Container struct {
	ID string `msgpack:"id"`
}

// ContainerList is the result of enumerating containers.
type ContainerList struct {
	Containers []Container `msgpack:"containers"`
}

// Blob is object metadata. A blob with an empty ID is the host's sentinel for
// "no such object".
type Blob struct {
	ID        string `msgpack:"id"`
	Container string `msgpack:"container"`
	ByteSize  uint64 `msgpack:"byte_size"`
}

// BlobList is the result of enumerating objects in a container.
type BlobList struct {
	Blobs []Blob `msgpack:"blobs"`
}

// FileChunk carries one chunk of a blob during upload or download.
type FileChunk struct {
	SequenceNo uint64 `msgpack:"sequence_no"`
	Container  string `msgpack:"container"`
	ID         string `msgpack:"id"`
	ChunkSize  uint64 `msgpack:"chunk_size"`
	TotalBytes uint64 `msgpack:"total_bytes"`
	ChunkBytes []byte `msgpack:"chunk_bytes"`
}

// StreamRequest asks the provider to begin a chunked download.
type StreamRequest struct {
	Container string `msgpack:"container"`
	ID        string `msgpack:"id"`
	ChunkSize uint64 `msgpack:"chunk_size"`
}

// Transfer is the locally computed chunking plan for an upload or download.
// TotalChunks is floor(TotalSize / ChunkSize); when TotalSize is not a
// multiple of ChunkSize the trailing partial chunk is implied and callers
// must account for the remainder themselves.
type Transfer struct {
	BlobID      string `msgpack:"blob_id"`
	Container   string `msgpack:"container"`
	ChunkSize   uint64 `msgpack:"chunk_size"`
	TotalSize   uint64 `msgpack:"total_size"`
	TotalChunks uint64 `msgpack:"total_chunks"`
}
