package bigbench

import "math/rand"

// sampleWorkloads are stand-ins for the six mystery algorithms.
// Each one draws its input from rng and does work proportional to
// the growth function of its id.
var sampleWorkloads = map[AlgorithmID]Algorithm{
	1: linearSum,
	2: threeSum,
	3: countInversions,
	4: selectionSortChecksum,
	5: fiveLoopParity,
	6: fourSum,
}

func randomInts(n int, rng *rand.Rand, bound int) []int {
	if n < 0 {
		n = 0
	}
	xs := make([]int, n)
	for i := range xs {
		xs[i] = rng.Intn(bound) - bound/2
	}
	return xs
}

// linearSum: O(n).
func linearSum(n int, rng *rand.Rand) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += rng.Intn(1000)
	}
	return sum
}

// threeSum counts triples summing to zero by brute force: O(n³).
func threeSum(n int, rng *rand.Rand) int {
	xs := randomInts(n, rng, 2*n+1)
	count := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if xs[i]+xs[j]+xs[k] == 0 {
					count++
				}
			}
		}
	}
	return count
}

// countInversions compares every pair: O(n²).
func countInversions(n int, rng *rand.Rand) int {
	xs := randomInts(n, rng, 1<<20)
	inversions := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if xs[i] > xs[j] {
				inversions++
			}
		}
	}
	return inversions
}

// selectionSortChecksum sorts in place and returns a position-weighted sum: O(n²).
func selectionSortChecksum(n int, rng *rand.Rand) int {
	xs := randomInts(n, rng, 1<<20)
	for i := 0; i < n; i++ {
		min := i
		for j := i + 1; j < n; j++ {
			if xs[j] < xs[min] {
				min = j
			}
		}
		xs[i], xs[min] = xs[min], xs[i]
	}

	checksum := 0
	for i, x := range xs {
		checksum += i * x
	}
	return checksum
}

// fiveLoopParity visits every 5-tuple of indices: O(n⁵).
func fiveLoopParity(n int, rng *rand.Rand) int {
	xs := randomInts(n, rng, 1<<16)
	acc := 0
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				for d := 0; d < n; d++ {
					for e := 0; e < n; e++ {
						acc += (xs[a] ^ xs[b] ^ xs[c] ^ xs[d] ^ xs[e]) & 1
					}
				}
			}
		}
	}
	return acc
}

// fourSum counts ordered 4-tuples summing to zero: O(n⁴).
func fourSum(n int, rng *rand.Rand) int {
	xs := randomInts(n, rng, 2*n+1)
	count := 0
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			for c := 0; c < n; c++ {
				for d := 0; d < n; d++ {
					if xs[a]+xs[b]+xs[c]+xs[d] == 0 {
						count++
					}
				}
			}
		}
	}
	return count
}
