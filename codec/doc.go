// Package codec defines the wire contract between an actor and its host
// runtime: the capability IDs, the operation names, and the request/response
// structs exchanged for each operation.
//
// Payloads are MessagePack. The facade packages never inspect encoded bytes;
// they hand structs to Serialize and buffers to Deserialize and treat the
// result as opaque. Capability IDs and operation names are fixed string
// constants shared with the host; changing one breaks routing.
package codec
