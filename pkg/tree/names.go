package tree

import "strconv"

var (
	underTwenty = [...]string{
		"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine",
		"ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen", "sixteen",
		"seventeen", "eighteen", "nineteen",
	}
	decades = [...]string{"twenty", "thirty", "forty", "fifty", "sixty", "seventy", "eighty", "ninety"}
)

// NumberName spells out n in English for 0 <= n < 100, e.g. "forty two".
// Other values are returned as decimal digits.
func NumberName(n int) string {
	switch {
	case n < 0 || n > 99:
		return strconv.Itoa(n)
	case n < 20:
		return underTwenty[n]
	case n%10 == 0:
		return decades[n/10-2]
	default:
		return decades[n/10-2] + " " + underTwenty[n%10]
	}
}

// SpellLabels returns a copy of root with every numeric label spelled out
// by [NumberName]. Non-numeric labels are kept.
func SpellLabels(root *Node) *Node {
	return root.Relabel(func(s string) string {
		v, err := strconv.Atoi(s)
		if err != nil {
			return s
		}
		return NumberName(v)
	})
}
