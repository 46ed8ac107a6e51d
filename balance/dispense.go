package balance

import "github.com/ndonyapour/wexplore-go/region"

// dispense produces a valid, not necessarily fair, per-child share total
// for one parent's children, given the parent's balance B. shares and
// remMerge/remClone are mutated in place; shares starts at each child's
// NWalkers and remMerge/remClone start at each child's
// NMergeable/NCloneable.
func dispense(childNodes []*region.Node, shares []int, remMerge []int, remClone []int, balance int) error {
	if len(childNodes) == 1 {
		childNodes[0].Balance += balance
		shares[0] += balance
		return nil
	}

	switch {
	case balance < 0:
		remaining := balance
		for i, cn := range childNodes {
			if remaining == 0 {
				break
			}
			payment := minInt(cn.NMergeable, -remaining)
			if payment <= 0 {
				continue
			}
			childNodes[i].Balance -= payment
			shares[i] -= payment
			remMerge[i] -= payment
			remaining += payment
		}
		if remaining < 0 {
			return ErrDebitExceedsCapacity
		}

	case balance > 0:
		remaining := balance
		for i, cn := range childNodes {
			if remaining == 0 {
				break
			}
			disbursement := minInt(cn.NCloneable, remaining)
			if disbursement <= 0 {
				continue
			}
			childNodes[i].Balance += disbursement
			shares[i] += disbursement
			remClone[i] -= disbursement
			remaining -= disbursement
		}
		if remaining > 0 {
			return ErrCreditExceedsCapacity
		}
	}

	return nil
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
