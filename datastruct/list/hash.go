package list

import "github.com/dchest/siphash"

var hashSeed = make([]byte, 16)

// SetHashSeed seeds the keyed hash behind the membership index used by the
// set algebra when a key function is installed.
func SetHashSeed(seed []byte) {
	hashSeed = make([]byte, 16)
	copy(hashSeed, seed)
}

func sumKey(key []byte) uint64 {
	h := siphash.New(hashSeed)
	_, _ = h.Write(key)
	return h.Sum64()
}

// memberIndex buckets element handles by the siphash of their comparison
// key. Bucket hits are confirmed with the compare callback, so lookups
// report exactly what the linear scan would as long as the key function
// agrees with the comparator.
type memberIndex struct {
	buckets map[uint64][][]byte
	keyFn   KeyFunc
}

func newMemberIndex(keyFn KeyFunc) *memberIndex {
	return &memberIndex{
		buckets: make(map[uint64][][]byte),
		keyFn:   keyFn,
	}
}

func (idx *memberIndex) add(data []byte) {
	k := sumKey(idx.keyFn(data))
	idx.buckets[k] = append(idx.buckets[k], data)
}

func (idx *memberIndex) contains(data []byte, compare CompareFunc) bool {
	k := sumKey(idx.keyFn(data))
	for _, candidate := range idx.buckets[k] {
		if compare(candidate, data) == 0 {
			return true
		}
	}
	return false
}
