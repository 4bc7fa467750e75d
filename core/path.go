package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Point is a coordinate on the map overlay in on-screen pixels at capture time
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// RegionPath is the command sequence of a region outline.
// The first point is a moveto, every following point a lineto.
//
// ex: M 10 10 L 50 10 L 50 40 Z
type RegionPath struct {
	Points []Point
	Closed bool
}

// Empty reports whether no point has been captured yet
func (p RegionPath) Empty() bool {
	return len(p.Points) == 0
}

// Append adds a point to an open path
func (p *RegionPath) Append(pt Point) {
	p.Points = append(p.Points, pt)
}

// Close terminates the path with a close-path command
func (p *RegionPath) Close() {
	p.Closed = true
}

func (p RegionPath) String() string {
	if len(p.Points) == 0 {
		return ""
	}

	var b strings.Builder
	for i, pt := range p.Points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(formatCoord(pt.X))
		b.WriteByte(' ')
		b.WriteString(formatCoord(pt.Y))
	}
	if p.Closed {
		b.WriteString(" Z")
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParseRegionPath parses `M x y (L x y)* Z?`
func ParseRegionPath(s string) (RegionPath, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return RegionPath{}, fmt.Errorf("path is empty")
	}

	var path RegionPath
	i := 0
	for i < len(tokens) {
		cmd := tokens[i]
		switch cmd {
		case "M", "L":
			if (cmd == "M") != (i == 0) {
				return RegionPath{}, fmt.Errorf("unexpected command %q at token %d", cmd, i)
			}
			if i+2 >= len(tokens) {
				return RegionPath{}, fmt.Errorf("command %q at token %d needs two coordinates", cmd, i)
			}
			x, err := parseCoord(tokens[i+1])
			if err != nil {
				return RegionPath{}, err
			}
			y, err := parseCoord(tokens[i+2])
			if err != nil {
				return RegionPath{}, err
			}
			path.Append(Point{X: x, Y: y})
			i += 3
		case "Z":
			if i == 0 || i != len(tokens)-1 {
				return RegionPath{}, fmt.Errorf("close command must terminate the path")
			}
			path.Close()
			i++
		default:
			return RegionPath{}, fmt.Errorf("unknown command %q at token %d", cmd, i)
		}
	}

	return path, nil
}

func parseCoord(token string) (float64, error) {
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid coordinate %q", token)
	}
	return v, nil
}
