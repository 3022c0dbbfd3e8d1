package math

// NewTransform returns an identity transform: no translation or rotation, unit scale.
func NewTransform() *Transform {
	return NewTransformFromPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
}

func NewTransformFromPosition(position Vec3) *Transform {
	return NewTransformFromPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
}

func NewTransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{Local: NewMat4Identity()}
	t.SetPositionRotationScale(position, rotation, scale)
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Quaternion) {
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) Rotate(rotation Quaternion) {
	t.Rotation = t.Rotation.Mul(rotation)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale Vec3) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

// GetLocal rebuilds the local matrix if anything changed since the last call.
// Points are scaled, then rotated, then translated.
func (t *Transform) GetLocal() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	if t.IsDirty {
		rt := t.Rotation.ToMat4().Mul(NewMat4Translation(t.Position))
		t.Local = NewMat4Scale(t.Scale).Mul(rt)
		t.IsDirty = false
	}
	return t.Local
}

// GetWorld combines the local matrix with every parent's world matrix.
func (t *Transform) GetWorld() Mat4 {
	if t == nil {
		return NewMat4Identity()
	}
	l := t.GetLocal()
	if t.Parent != nil {
		return l.Mul(t.Parent.GetWorld())
	}
	return l
}

// ApplyPoints returns a copy of points moved into world space.
func (t *Transform) ApplyPoints(points []Vec3) []Vec3 {
	world := t.GetWorld()
	out := make([]Vec3, len(points))
	for i, p := range points {
		out[i] = p.Transform(world)
	}
	return out
}
