// Package resource implements a fail-fast memory budget.
//
// A Budget counts reserved bytes and, when it has a limit, admits them
// through a weighted semaphore. Reserve never blocks; a reservation that
// does not fit fails with ErrBudgetExceeded.
//
//	b := resource.NewBudget(64 << 20)
//	if err := b.Reserve(4096); err != nil {
//		return err
//	}
//	defer b.Release(4096)
//
// All methods are safe for concurrent use and treat a nil Budget as
// unlimited.
package resource
