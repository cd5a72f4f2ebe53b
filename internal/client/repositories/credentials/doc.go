// Package credentials persists the durable half of a session: the bearer
// token and the serialized identity, under the metadata keys "token" and
// "user". The two keys are always written and cleared together in a single
// transaction so a reload never restores one without the other.
package credentials
