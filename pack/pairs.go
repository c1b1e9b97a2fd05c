package pack

// pairIndices returns every unordered pair {i, j}, i < j, drawn from 0..n-1.
// C(n,2) pairs total: no self-pairing, no duplicates. Emission order is fixed
// for a given n so packing runs replay identically under a fixed random seed.
func pairIndices(n int) [][2]int {
	if n < 2 {
		return nil
	}
	out := make([][2]int, 0, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}
