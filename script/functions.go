package script

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"github.com/Knetic/govaluate"
)

// functions builds the table of host callbacks bound to h. Every
// closure reaches the engine through h.current, set for the duration of
// one Run call, rather than through a package-level pointer — the
// script host itself never stores simulation state beyond the log
// buffer and last error.
func (h *Host) functions() map[string]govaluate.ExpressionFunction {
	return map[string]govaluate.ExpressionFunction{
		"set_cell":        h.fnSetCell,
		"set_temperature": h.fnSetTemperature,
		"draw_line":       h.fnDrawLine,
		"vec2":            h.fnVec2,
		"type_id":         h.fnTypeID,
		"rand":            h.fnRand,
		"print":           h.fnPrint,
	}
}

func (h *Host) fnSetCell(args ...interface{}) (interface{}, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("set_cell wants 3 args (x, y, id), got %d", len(args))
	}
	x, y, id, err := xyid(args[0], args[1], args[2])
	if err != nil {
		return nil, err
	}
	h.current.EnqueuePaint(x, y, id)
	return nil, nil
}

func (h *Host) fnSetTemperature(args ...interface{}) (interface{}, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("set_temperature wants 3 args (x, y, T), got %d", len(args))
	}
	x, ok1 := args[0].(float64)
	y, ok2 := args[1].(float64)
	t, ok3 := args[2].(float64)
	if !ok1 || !ok2 || !ok3 {
		return nil, fmt.Errorf("set_temperature args must be numeric")
	}
	h.current.SetTemperature(int(x), int(y), float32(t))
	return nil, nil
}

// fnVec2 builds the point value draw_line's p1/p2 arguments expect.
func (h *Host) fnVec2(args ...interface{}) (interface{}, error) {
	if len(args) != 2 {
		return nil, fmt.Errorf("vec2 wants 2 args (x, y), got %d", len(args))
	}
	x, ok1 := args[0].(float64)
	y, ok2 := args[1].(float64)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("vec2 args must be numeric")
	}
	return [2]float64{x, y}, nil
}

// fnDrawLine enqueues a paint for every cell on the Bresenham line from
// p1 to p2, inclusive of both endpoints. p1 and p2 must come from vec2.
func (h *Host) fnDrawLine(args ...interface{}) (interface{}, error) {
	if len(args) != 3 {
		return nil, fmt.Errorf("draw_line wants 3 args (p1, p2, id), got %d", len(args))
	}
	p1, ok1 := args[0].([2]float64)
	p2, ok2 := args[1].([2]float64)
	idf, ok3 := args[2].(float64)
	if !ok1 || !ok2 {
		return nil, fmt.Errorf("draw_line points must come from vec2(...)")
	}
	if !ok3 || idf < 0 || idf > 255 {
		return nil, fmt.Errorf("draw_line id must be a material id 0..255")
	}
	id := byte(idf)
	x1, y1 := int(p1[0]), int(p1[1])
	x2, y2 := int(p2[0]), int(p2[1])

	for _, p := range bresenham(x1, y1, x2, y2) {
		h.current.EnqueuePaint(p[0], p[1], id)
	}
	return nil, nil
}

func (h *Host) fnTypeID(args ...interface{}) (interface{}, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("type_id wants 1 arg (name), got %d", len(args))
	}
	name, ok := args[0].(string)
	if !ok {
		return nil, fmt.Errorf("type_id arg must be a string")
	}
	id, found := h.current.TypeID(name)
	if !found {
		return nil, fmt.Errorf("unknown material name %q", name)
	}
	return float64(id), nil
}

func (h *Host) fnRand(args ...interface{}) (interface{}, error) {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return int64(0), nil
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

func (h *Host) fnPrint(args ...interface{}) (interface{}, error) {
	line := ""
	for i, a := range args {
		if i > 0 {
			line += " "
		}
		line += fmt.Sprint(a)
	}
	h.appendLog(line)
	return nil, nil
}

func xyid(xArg, yArg, idArg interface{}) (x, y int, id byte, err error) {
	xf, ok1 := xArg.(float64)
	yf, ok2 := yArg.(float64)
	idf, ok3 := idArg.(float64)
	if !ok1 || !ok2 || !ok3 {
		return 0, 0, 0, fmt.Errorf("coordinates and id must be numeric")
	}
	if idf < 0 || idf > 255 {
		return 0, 0, 0, fmt.Errorf("material id %v out of range 0..255", idf)
	}
	return int(xf), int(yf), byte(idf), nil
}

// bresenham returns every integer point on the line from (x1,y1) to
// (x2,y2), inclusive, using the standard integer-only midpoint
// algorithm.
func bresenham(x1, y1, x2, y2 int) [][2]int {
	points := make([][2]int, 0)

	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		points = append(points, [2]int{x, y})
		if x == x2 && y == y2 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
	return points
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
