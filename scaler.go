package charts

type Domain struct {
	fst float64
	lst float64
}

func NumberDomain(f, t float64) Domain {
	return Domain{
		fst: f,
		lst: t,
	}
}

// Extent returns the domain covered by the finite values of the list,
// NaN and infinities being read as 0.
func Extent(values []float64) Domain {
	var d Domain
	for i, v := range values {
		v = finite(v)
		if i == 0 || v < d.fst {
			d.fst = v
		}
		if i == 0 || v > d.lst {
			d.lst = v
		}
	}
	return d
}

func (d Domain) Merge(other Domain) Domain {
	x := d
	if other.fst < x.fst {
		x.fst = other.fst
	}
	if other.lst > x.lst {
		x.lst = other.lst
	}
	return x
}

func (d Domain) Diff(v float64) float64 {
	return v - d.fst
}

func (d Domain) Extend() float64 {
	return d.lst - d.fst
}

func (d Domain) Min() float64 {
	return d.fst
}

func (d Domain) Max() float64 {
	return d.lst
}

// Widen makes sure the domain is not empty by moving its upper bound.
func (d Domain) Widen() Domain {
	if d.lst == d.fst {
		d.lst = d.fst + 1
	}
	return d
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Middle() float64 {
	return r.F + r.Len()/2
}

type Scaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler {
	return Scaler{
		Range:  rg,
		Domain: dom,
	}
}

// Scale maps v from the domain to the range. The middle of the range is
// returned when the domain is empty.
func (s Scaler) Scale(v float64) float64 {
	pos := s.F + s.Diff(v)*s.Space()
	if !isFinite(pos) {
		return s.Middle()
	}
	return pos
}

func (s Scaler) Space() float64 {
	return s.Len() / s.Extend()
}
