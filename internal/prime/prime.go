package prime

// IsPrime checks whether n is a prime number using trial division over odd factors
func IsPrime(n int) bool {
	if n == 2 || n == 3 {
		return true
	}
	if n < 2 || n%2 == 0 {
		return false
	}
	for factor := 3; factor*factor <= n; factor += 2 {
		if n%factor == 0 {
			return false
		}
	}
	return true
}

// Next returns the smallest prime that is greater than or equal to n after n was made odd.
// Even values are incremented by one before the search starts, so Next(2) is 3.
// Values below 1 are treated as 1.
func Next(n int) int {
	if n < 1 {
		n = 1
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}
	return n
}
