package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SetSerialized serializes data and puts it into contract storage.
func SetSerialized(ctx storage.Context, key any, value any) {
	data := std.Serialize(value)
	storage.Put(ctx, key, data)
}

// GetSerialized returns deserialized value stored by the key or nil if
// there is no such key.
func GetSerialized(ctx storage.Context, key any) any {
	data := storage.Get(ctx, key)
	if data == nil {
		return nil
	}

	return std.Deserialize(data.([]byte))
}

// NextID increments the counter stored by the key and returns the new value.
// Counters start from 1, so 0 can be used as "no identifier".
func NextID(ctx storage.Context, key any) int {
	id := Counter(ctx, key) + 1
	storage.Put(ctx, key, id)

	return id
}

// Counter returns current value of the counter stored by the key.
func Counter(ctx storage.Context, key any) int {
	raw := storage.Get(ctx, key)
	if raw == nil {
		return 0
	}

	return raw.(int)
}

// HasHash160 checks whether the address is in the list.
func HasHash160(list []interop.Hash160, addr interop.Hash160) bool {
	for i := range list {
		if list[i].Equals(addr) {
			return true
		}
	}

	return false
}

// HasString checks whether the string is in the list.
func HasString(list []string, s string) bool {
	for i := range list {
		if list[i] == s {
			return true
		}
	}

	return false
}
