package wallet

import "testing"

func TestMoney_String(t *testing.T) {
	testCases := []struct {
		money Money
		want  string
	}{
		{M(d("1000"), "USD"), "$1,000.00"},
		{M(d("42.5"), "QQQ"), "42.50 QQQ"},
		{M(d("3"), ""), "3.00"},
	}
	for _, tc := range testCases {
		t.Run(tc.want, func(t *testing.T) {
			if got := tc.money.String(); got != tc.want {
				t.Errorf("String() = %q, want %q", got, tc.want)
			}
		})
	}
}
