// Package djb2 implements Bernstein's polynomial rolling hash.
package djb2

// Hash maps the key onto a bucket index in [0, buckets). The recurrence
// is h = h*33 + c over each byte of the key, seeded with 5381; overflow
// wraps mod 2^64 and is not an error. Same key and same bucket count
// always produce the same index. Buckets must be positive.
func Hash(key string, buckets int) int {
	var h uint64 = 5381

	for i := 0; i < len(key); i++ {
		h = h*33 + uint64(key[i])
	}

	return int(h % uint64(buckets))
}
