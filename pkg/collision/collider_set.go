package collision

// ColliderSet 一组跟随实体锚点移动的碰撞盒
//
// 每个碰撞盒相对锚点有固定偏移。MoveTo 原地重算坐标，不重新分配内存。
type ColliderSet struct {
	offsets []Rect // 相对锚点的碰撞盒（X/Y 为偏移量）
	boxes   []Rect // 当前锚点下的碰撞盒
}

// NewColliderSet 根据相对锚点的偏移矩形创建碰撞盒集合，初始锚点为 (0, 0)
func NewColliderSet(offsets []Rect) *ColliderSet {
	cs := &ColliderSet{
		offsets: append([]Rect(nil), offsets...),
		boxes:   make([]Rect, len(offsets)),
	}
	cs.MoveTo(0, 0)
	return cs
}

// NewBoxCollider 创建覆盖整个实体的单碰撞盒集合
func NewBoxCollider(width, height int) *ColliderSet {
	return NewColliderSet([]Rect{{W: width, H: height}})
}

// NewStripCollider 用若干水平条带近似实体轮廓
//
// 每个条带在 width 内水平居中，自上而下依次堆叠。
// sizes 中每一项的 X/Y 被忽略，只使用 W/H。
func NewStripCollider(width int, sizes []Rect) *ColliderSet {
	offsets := make([]Rect, len(sizes))
	row := 0
	for i, s := range sizes {
		offsets[i] = Rect{
			X: (width - s.W) / 2,
			Y: row,
			W: s.W,
			H: s.H,
		}
		row += s.H
	}
	return NewColliderSet(offsets)
}

// DotSilhouette 20x20 圆点的 11 条带轮廓（近似八边形）
var DotSilhouette = []Rect{
	{W: 6, H: 1},
	{W: 10, H: 1},
	{W: 14, H: 1},
	{W: 16, H: 2},
	{W: 18, H: 2},
	{W: 20, H: 6},
	{W: 18, H: 2},
	{W: 16, H: 2},
	{W: 14, H: 1},
	{W: 10, H: 1},
	{W: 6, H: 1},
}

// MoveTo 将所有碰撞盒移动到新的锚点
func (cs *ColliderSet) MoveTo(x, y int) {
	for i, o := range cs.offsets {
		cs.boxes[i] = Rect{X: x + o.X, Y: y + o.Y, W: o.W, H: o.H}
	}
}

// Boxes 返回当前锚点下的碰撞盒
// 返回的切片在下一次 MoveTo 后内容会变化，调用方不应持有
func (cs *ColliderSet) Boxes() []Rect {
	return cs.boxes
}

// Len 返回碰撞盒数量
func (cs *ColliderSet) Len() int {
	return len(cs.boxes)
}
