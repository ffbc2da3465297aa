package types

import "fmt"

const (
	won100M = 100_000_000
	won10K  = 10_000
)

// FormatPrice renders a KRW amount using 억 (10^8) and 만 (10^4) units,
// e.g. 650000000 -> "6억 5000만" and 3800000 -> "380만".
func FormatPrice(won int64) string {
	eok := won / won100M
	man := (won % won100M) / won10K

	if eok > 0 {
		if man > 0 {
			return fmt.Sprintf("%d억 %d만", eok, man)
		}
		return fmt.Sprintf("%d억", eok)
	}

	return fmt.Sprintf("%d만", man)
}
