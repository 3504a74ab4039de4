package codec

// CapIDKeyValue is the capability ID for key-value store providers.
const CapIDKeyValue = "wascc:keyvalue"

// Key-value operation names.
const (
	OpGet             = "Get"
	OpSet             = "Set"
	OpAdd             = "Add"
	OpListPush        = "Push"
	OpListItemDelete  = "ListItemDelete"
	OpDel             = "Del"
	OpListRange       = "Range"
	OpListClear       = "Clear"
	OpSetAdd          = "SetAdd"
	OpSetRemove       = "SetRemove"
	OpSetUnion        = "SetUnion"
	OpSetIntersection = "SetIntersection"
	OpSetQuery        = "SetQuery"
	OpKeyExists       = "KeyExists"
)

type GetRequest struct {
	Key string `msgpack:"key"`
}

// GetResponse distinguishes a missing key (Exists false) from an empty value.
type GetResponse struct {
	Value  string `msgpack:"value"`
	Exists bool   `msgpack:"exists"`
}

type SetRequest struct {
	Key   string `msgpack:"key"`
	Value string `msgpack:"value"`
	// ExpiresSeconds of zero means the key never expires.
	ExpiresSeconds int32 `msgpack:"expires_s"`
}

type SetResponse struct {
	Value string `msgpack:"value"`
}

type AddRequest struct {
	Key   string `msgpack:"key"`
	Value int32  `msgpack:"value"`
}

type AddResponse struct {
	Value int32 `msgpack:"value"`
}

type ListPushRequest struct {
	Key   string `msgpack:"key"`
	Value string `msgpack:"value"`
}

type ListResponse struct {
	NewCount int32 `msgpack:"new_count"`
}

type ListDelItemRequest struct {
	Key   string `msgpack:"key"`
	Value string `msgpack:"value"`
}

type DelRequest struct {
	Key string `msgpack:"key"`
}

type DelResponse struct {
	Key string `msgpack:"key"`
}

type ListRangeRequest struct {
	Key string `msgpack:"key"`
	// Negative indices count from the end of the list, Redis style.
	Start int32 `msgpack:"start"`
	// Stop is inclusive.
	Stop int32 `msgpack:"stop"`
}

type ListRangeResponse struct {
	Values []string `msgpack:"values"`
}

type ListClearRequest struct {
	Key string `msgpack:"key"`
}

type SetAddRequest struct {
	Key   string `msgpack:"key"`
	Value string `msgpack:"value"`
}

type SetRemoveRequest struct {
	Key   string `msgpack:"key"`
	Value string `msgpack:"value"`
}

type SetOperationResponse struct {
	NewCount int32 `msgpack:"new_count"`
}

type SetUnionRequest struct {
	Keys []string `msgpack:"keys"`
}

type SetIntersectionRequest struct {
	Keys []string `msgpack:"keys"`
}

type SetQueryRequest struct {
	Key string `msgpack:"key"`
}

type SetQueryResponse struct {
	Values []string `msgpack:"values"`
}

type KeyExistsQuery struct {
	Key string `msgpack:"key"`
}

type KeyExistsResponse struct {
	Exists bool `msgpack:"exists"`
}
