package gridgraph

import (
	"fmt"
	"strconv"
	"strings"
)

// CoordinateToKey encodes (x,y) as "x,y".
func CoordinateToKey(x, y int) Key {
	return Key(strconv.Itoa(x) + "," + strconv.Itoa(y))
}

// KeyToCoordinate decodes a key produced by CoordinateToKey.
// It returns an error wrapping ErrMalformedKey unless key holds exactly two
// base-10 integers separated by a comma.
func KeyToCoordinate(key Key) (x, y int, err error) {
	parts := strings.Split(string(key), ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedKey, key)
	}
	if x, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformedKey, key, err)
	}
	if y, err = strconv.Atoi(parts[1]); err != nil {
		return 0, 0, fmt.Errorf("%w: %q: %v", ErrMalformedKey, key, err)
	}

	return x, y, nil
}

// ParseKey is KeyToCoordinate returning a Coord.
func ParseKey(key Key) (Coord, error) {
	x, y, err := KeyToCoordinate(key)
	if err != nil {
		return Coord{}, err
	}

	return Coord{X: x, Y: y}, nil
}
