package chunk

import "strconv"

// ParseName decodes s into its signed grid position.
// Lowercase letters, missing axes, signs, leading zeros and trailing junk are
// all rejected so that every accepted name round-trips through Position.Name.
func ParseName(s string) (Position, bool) {
	if len(s) < 4 {
		return Position{}, false
	}
	h := s[0]
	if h != 'E' && h != 'W' {
		return Position{}, false
	}
	i := 1
	hMag, i, ok := magnitude(s, i)
	if !ok || i >= len(s) {
		return Position{}, false
	}
	v := s[i]
	if v != 'N' && v != 'S' {
		return Position{}, false
	}
	vMag, i, ok := magnitude(s, i+1)
	if !ok || i != len(s) {
		return Position{}, false
	}

	var p Position
	if h == 'E' {
		p.X = hMag
	} else {
		p.X = -hMag - 1
	}
	if v == 'S' {
		p.Y = vMag
	} else {
		p.Y = -vMag - 1
	}
	return p, true
}

// magnitude reads the run of digits starting at i.
func magnitude(s string, i int) (int, int, bool) {
	start := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == start {
		return 0, i, false
	}
	if s[start] == '0' && i-start > 1 {
		return 0, i, false
	}
	n, err := strconv.Atoi(s[start:i])
	if err != nil {
		return 0, i, false
	}
	return n, i, true
}

// Name formats p back into its chunk identifier.
func (p Position) Name() Name {
	buf := make([]byte, 0, 8)
	if p.X >= 0 {
		buf = append(buf, 'E')
		buf = strconv.AppendInt(buf, int64(p.X), 10)
	} else {
		buf = append(buf, 'W')
		buf = strconv.AppendInt(buf, int64(-p.X-1), 10)
	}
	if p.Y >= 0 {
		buf = append(buf, 'S')
		buf = strconv.AppendInt(buf, int64(p.Y), 10)
	} else {
		buf = append(buf, 'N')
		buf = strconv.AppendInt(buf, int64(-p.Y-1), 10)
	}
	return Name(buf)
}

// Position decodes n; see ParseName.
func (n Name) Position() (Position, bool) {
	return ParseName(string(n))
}

// Valid reports whether n is a well-formed identifier.
func (n Name) Valid() bool {
	_, ok := ParseName(string(n))
	return ok
}

// Shift returns the name of the chunk dx columns east and dy rows south of n.
func (n Name) Shift(dx, dy int) (Name, bool) {
	p, ok := n.Position()
	if !ok {
		return "", false
	}
	return Position{X: p.X + dx, Y: p.Y + dy}.Name(), true
}
