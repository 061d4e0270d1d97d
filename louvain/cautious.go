package louvain

import (
	"runtime"
	"sort"
	"sync"
)

// acquireCautious implements the §9 design note's "cautious" two-phase
// acquire: list all neighbor ids (plus v itself), sort them, then acquire
// in id order; if any acquire fails, release everything taken so far and
// restart. Sorted-order acquisition is what makes this deadlock-free
// against another vertex's concurrent cautious acquire over an overlapping
// neighbor set.
//
// ids must already be sorted and deduplicated (a self-loop would otherwise
// try to lock the same *sync.Mutex twice from one goroutine, which can never
// succeed); dedupeSorted produces such a slice, and the caller passes the
// same slice to releaseCautious.
func acquireCautious(ids []int, locks []sync.Mutex) {
	for {
		acquired := 0
		ok := true
		for _, id := range ids {
			if locks[id].TryLock() {
				acquired++
			} else {
				ok = false
				break
			}
		}
		if ok {
			return
		}
		for i := 0; i < acquired; i++ {
			locks[ids[i]].Unlock()
		}
		runtime.Gosched()
	}
}

// releaseCautious releases locks acquired by a matching acquireCautious
// call.
func releaseCautious(ids []int, locks []sync.Mutex) {
	for _, id := range ids {
		locks[id].Unlock()
	}
}

// dedupeSorted sorts ids and removes duplicates in place, returning the
// shortened slice.
func dedupeSorted(ids []int) []int {
	sort.Ints(ids)
	n := 0
	for i, id := range ids {
		if i == 0 || ids[i-1] != id {
			ids[n] = id
			n++
		}
	}
	return ids[:n]
}
