package entity

import "strings"

// ObjectRef identifies a stored object by bucket and key.
type ObjectRef struct {
	Bucket string
	Key    string
}

func NewObjectRef(bucket, key string) ObjectRef {
	return ObjectRef{Bucket: bucket, Key: key}
}

// Filename returns the part of the key after the last "/".
func (o ObjectRef) Filename() string {
	if i := strings.LastIndex(o.Key, "/"); i >= 0 {
		return o.Key[i+1:]
	}
	return o.Key
}

func (o ObjectRef) HasPrefix(prefix string) bool {
	return strings.HasPrefix(o.Key, prefix)
}

func (o ObjectRef) String() string {
	return o.Bucket + "/" + o.Key
}
