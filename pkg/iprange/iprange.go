// Package iprange builds pyrange ranges over IP addresses.
package iprange

import (
	"fmt"
	"math/big"
	"net/netip"
	"strings"

	"github.com/henderiw/pyrange/pkg/pyrange"
	"go4.org/netipx"
)

// AddrOps describes netip.Addr as a range element. Displacement keeps the
// address family of the operand.
func AddrOps() pyrange.Ops[netip.Addr] {
	return pyrange.Ops[netip.Addr]{
		Compare: func(a, b netip.Addr) int { return a.Compare(b) },
		Inc:     func(a netip.Addr) netip.Addr { return a.Next() },
		Dec:     func(a netip.Addr) netip.Addr { return a.Prev() },
		Add:     addrAdd,
	}
}

// From returns the addresses of the inclusive range r.
func From(r netipx.IPRange) (pyrange.Range[netip.Addr], error) {
	return FromStep(r, 1)
}

// FromStep returns every step-th address of the inclusive range r. A
// negative step walks from the last address down to the first.
func FromStep(r netipx.IPRange, step int) (pyrange.Range[netip.Addr], error) {
	if !r.IsValid() {
		return pyrange.Range[netip.Addr]{}, fmt.Errorf("invalid ip range %s", r.String())
	}
	if step == 0 {
		return pyrange.Range[netip.Addr]{}, pyrange.ErrZeroStep
	}
	if step < 0 {
		stop := r.From().Prev()
		if !stop.IsValid() {
			return pyrange.Range[netip.Addr]{}, fmt.Errorf("ip range %s starts at the first address of its family", r.String())
		}
		return pyrange.NewStep(AddrOps(), r.To(), stop, step), nil
	}
	stop := r.To().Next()
	if !stop.IsValid() {
		return pyrange.Range[netip.Addr]{}, fmt.Errorf("ip range %s ends at the last address of its family", r.String())
	}
	return pyrange.NewStep(AddrOps(), r.From(), stop, step), nil
}

// Prefix returns the addresses covered by p.
func Prefix(p netip.Prefix, step int) (pyrange.Range[netip.Addr], error) {
	r := netipx.RangeOfPrefix(p)
	if !r.IsValid() {
		return pyrange.Range[netip.Addr]{}, fmt.Errorf("invalid prefix %s", p.String())
	}
	return FromStep(r, step)
}

// Parse accepts either a "from-to" address range or a CIDR prefix.
func Parse(s string, step int) (pyrange.Range[netip.Addr], error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return pyrange.Range[netip.Addr]{}, fmt.Errorf("prefix %q is invalid: %w", s, err)
		}
		return Prefix(p.Masked(), step)
	}
	r, err := netipx.ParseIPRange(s)
	if err != nil {
		return pyrange.Range[netip.Addr]{}, fmt.Errorf("ip range %q is invalid: %w", s, err)
	}
	return FromStep(r, step)
}

// Count returns the number of addresses in the inclusive range r.
func Count(r netipx.IPRange) *big.Int {
	if !r.IsValid() {
		return new(big.Int)
	}
	diff := new(big.Int).Sub(addrToInt(r.To()), addrToInt(r.From()))
	return diff.Add(diff, big.NewInt(1))
}

func addrAdd(a netip.Addr, n int) netip.Addr {
	v := new(big.Int).Add(addrToInt(a), big.NewInt(int64(n)))
	return intToAddr(v, a.Is4())
}

func addrToInt(a netip.Addr) *big.Int {
	if a.Is4() {
		b := a.As4()
		return new(big.Int).SetBytes(b[:])
	}
	b := a.As16()
	return new(big.Int).SetBytes(b[:])
}

// intToAddr saturates at the bounds of the family so an overshoot still
// compares past the stop address.
func intToAddr(v *big.Int, is4 bool) netip.Addr {
	size := 16
	if is4 {
		size = 4
	}
	limit := new(big.Int).Lsh(big.NewInt(1), uint(size*8))
	limit.Sub(limit, big.NewInt(1))
	switch {
	case v.Sign() < 0:
		v = new(big.Int)
	case v.Cmp(limit) > 0:
		v = limit
	}

	var buf [16]byte
	v.FillBytes(buf[16-size:])
	if is4 {
		return netip.AddrFrom4([4]byte(buf[12:]))
	}
	return netip.AddrFrom16(buf)
}
