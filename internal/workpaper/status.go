package workpaper

// statusPriority is the explicit total order used when deriving a job's
// status from its modules. Lower value means less complete.
var statusPriority = map[Status]int{
	StatusNotStarted:          1,
	StatusInProgress:          2,
	StatusAwaitingClient:      3,
	StatusReadyForReview:      4,
	StatusReadyForFinalReview: 5,
	StatusCompleted:           6,
	StatusFrozen:              7,
}

// statusOrder lists statuses in ascending priority, for reverse lookup.
var statusOrder = []Status{
	StatusNotStarted,
	StatusInProgress,
	StatusAwaitingClient,
	StatusReadyForReview,
	StatusReadyForFinalReview,
	StatusCompleted,
	StatusFrozen,
}

// StatusPriority returns the ordering rank of a status. NA and unknown
// statuses rank as NOT_STARTED.
func StatusPriority(s Status) int {
	if p, ok := statusPriority[s]; ok {
		return p
	}

	return statusPriority[StatusNotStarted]
}

// DeriveJobStatus reduces module statuses to a job status: the lowest
// priority among applicable (non-NA) modules wins. No applicable modules
// means NOT_STARTED. Pure; always recomputed in full after any module
// status change.
func DeriveJobStatus(modules []*ModuleInstance) Status {
	minPriority := 0

	for _, m := range modules {
		if m.Status == StatusNA {
			continue
		}

		p := StatusPriority(m.Status)
		if minPriority == 0 || p < minPriority {
			minPriority = p
		}
	}

	if minPriority == 0 {
		return StatusNotStarted
	}

	return statusOrder[minPriority-1]
}

// ValidStatus reports whether s is a known module/job status.
func ValidStatus(s Status) bool {
	if s == StatusNA {
		return true
	}

	_, ok := statusPriority[s]

	return ok
}
