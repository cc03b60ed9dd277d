package grouped

import (
	"sync"

	"github.com/agiangrant/grouped/geom"
)

// sizeSlicePool recycles the scratch size lists built on every optimal-size
// pass. Groups never exceed MaxSize members, so one capacity fits all.
var sizeSlicePool = sync.Pool{
	New: func() interface{} {
		return make([]geom.Size, 0, MaxSize)
	},
}

// acquireSizeSlice returns a slice with len == n.
// Caller must call releaseSizeSlice when done.
func acquireSizeSlice(n int) []geom.Size {
	slice := sizeSlicePool.Get().([]geom.Size)
	if cap(slice) < n {
		sizeSlicePool.Put(slice[:0])
		return make([]geom.Size, n)
	}
	return slice[:n]
}

func releaseSizeSlice(slice []geom.Size) {
	if slice == nil || cap(slice) > MaxSize*4 {
		return
	}
	sizeSlicePool.Put(slice[:0])
}
