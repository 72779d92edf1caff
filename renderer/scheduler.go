package renderer

// Split the per-pixel sample budget between a pool of workers.
//
// Each worker receives floor(total/workers) samples and the remainder is
// handed out one sample at a time to the first workers so that the counts
// always add up to total. If there are more workers than samples, the extra
// workers are not scheduled and the returned slice is shorter than workers.
func SplitSamples(total, workers uint32) []uint32 {
	if total == 0 || workers == 0 {
		return nil
	}
	if workers > total {
		workers = total
	}

	assignment := make([]uint32, workers)
	share, remainder := total/workers, total%workers
	for idx := range assignment {
		assignment[idx] = share
		if uint32(idx) < remainder {
			assignment[idx]++
		}
	}

	return assignment
}
