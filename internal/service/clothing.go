package service

// ClothingSets returns how many rotatable clothing sets (underwear, socks,
// tops) a trip needs. One set covers washes+1 days before it must be
// rewashed; the spare flag adds a laundry-day buffer set.
//
// Negative wash counts are treated as zero, so the cycle length never drops
// below one day. A zero-day trip needs no sets.
func ClothingSets(days, washes int, spare bool) int {
	if days <= 0 {
		return 0
	}
	if washes < 0 {
		washes = 0
	}
	cycles := washes + 1
	sets := (days + cycles - 1) / cycles
	if spare {
		sets++
	}
	return sets
}
