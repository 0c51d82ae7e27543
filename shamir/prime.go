package shamir

import "math/big"

// catalog lists, for bit sizes 128 to 4096 in steps of 64, the smallest
// prime above 2^bits as the offset from 2^bits.
var catalog = []struct {
	bits   uint
	offset int64
}{
	{128, 51},
	{192, 133},
	{256, 297},
	{320, 27},
	{384, 231},
	{448, 211},
	{512, 75},
	{576, 243},
	{640, 115},
	{704, 327},
	{768, 183},
	{832, 637},
	{896, 993},
	{960, 1465},
	{1024, 643},
	{1088, 1591},
	{1152, 561},
	{1216, 483},
	{1280, 1815},
	{1344, 2467},
	{1408, 255},
	{1472, 231},
	{1536, 75},
	{1600, 895},
	{1664, 117},
	{1728, 465},
	{1792, 277},
	{1856, 421},
	{1920, 1515},
	{1984, 3681},
	{2048, 981},
	{2112, 817},
	{2176, 1987},
	{2240, 1021},
	{2304, 471},
	{2368, 505},
	{2432, 907},
	{2496, 3165},
	{2560, 903},
	{2624, 1873},
	{2688, 561},
	{2752, 6261},
	{2816, 1833},
	{2880, 261},
	{2944, 393},
	{3008, 4365},
	{3072, 813},
	{3136, 1233},
	{3200, 751},
	{3264, 1167},
	{3328, 87},
	{3392, 861},
	{3456, 2415},
	{3520, 1191},
	{3584, 21},
	{3648, 4641},
	{3712, 97},
	{3776, 295},
	{3840, 583},
	{3904, 5811},
	{3968, 5857},
	{4032, 4455},
	{4096, 1761},
}

var primes []*big.Int

func init() {
	primes = make([]*big.Int, len(catalog))
	for i, entry := range catalog {
		p := new(big.Int).Lsh(bigOne, entry.bits)
		primes[i] = p.Add(p, big.NewInt(entry.offset))
	}
}

// Primes returns a copy of the prime catalog in ascending order.
func Primes() []*big.Int {
	return copyInts(primes)
}

// LargeEnoughPrime returns the smallest catalog prime strictly greater than
// the absolute value of every given value.
//
// Catalog entries are roughly 2^64 apart, so shares produced for a secret
// select the same prime again when they are combined.
func LargeEnoughPrime(values ...*big.Int) (*big.Int, error) {
	largest := new(big.Int)
	abs := new(big.Int)

	for _, v := range values {
		if v == nil {
			return nil, ErrInvalidArgument
		}
		if abs.Abs(v).Cmp(largest) > 0 {
			largest.Set(abs)
		}
	}

	for _, p := range primes {
		if p.Cmp(largest) > 0 {
			return new(big.Int).Set(p), nil
		}
	}

	return nil, ErrFieldTooSmall
}
