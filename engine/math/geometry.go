package math

import "github.com/spaghettifunk/geometria/engine/core"

// GeometryFaceNormal returns the unit normal of the counter-clockwise triangle (a, b, c).
func GeometryFaceNormal(a, b, c Vec3) Vec3 {
	edge1 := b.Sub(a)
	edge2 := c.Sub(a)
	return edge1.Cross(edge2).Normalized()
}

// GeometryTriangleCentroid returns the average of the three corners.
func GeometryTriangleCentroid(a, b, c Vec3) Vec3 {
	return a.Add(b).Add(c).DivScalar(3.0)
}

// GeometryGenerateNormals returns one normal per vertex. Every vertex takes
// the face normal of the last triangle that references it.
func GeometryGenerateNormals(vertices []Vec3, indices []uint32) []Vec3 {
	normals := make([]Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0 := indices[i+0]
		i1 := indices[i+1]
		i2 := indices[i+2]

		// NOTE: This just generates a face normal. Smoothing out should be done in a separate pass if desired.
		normal := GeometryFaceNormal(vertices[i0], vertices[i1], vertices[i2])
		normals[i0] = normal
		normals[i1] = normal
		normals[i2] = normal
	}
	return normals
}

// GeometryExtents returns the component-wise min and max of the vertices.
// An empty slice yields zero extents.
func GeometryExtents(vertices []Vec3) Extents3D {
	if len(vertices) == 0 {
		return Extents3D{}
	}
	ext := Extents3D{Min: vertices[0], Max: vertices[0]}
	for _, v := range vertices[1:] {
		ext.Min = Vec3{min(ext.Min.X, v.X), min(ext.Min.Y, v.Y), min(ext.Min.Z, v.Z)}
		ext.Max = Vec3{max(ext.Max.X, v.X), max(ext.Max.Y, v.Y), max(ext.Max.Z, v.Z)}
	}
	return ext
}

func reassignIndex(indices []uint32, from uint32, to uint32) {
	for i := range indices {
		if indices[i] == from {
			indices[i] = to
		} else if indices[i] > from {
			// Pull in all indicies higher than 'from' by 1.
			indices[i]--
		}
	}
}

// GeometryDeduplicateVertices merges vertices that lie within K_FLOAT_EPSILON
// of an earlier vertex and rewrites indices in place to match. It returns the
// unique vertices in first-seen order.
func GeometryDeduplicateVertices(vertices []Vec3, indices []uint32) []Vec3 {
	uniqueVerts := make([]Vec3, 0, len(vertices))
	foundCount := uint32(0)

	for v := range vertices {
		found := false
		for u := range uniqueVerts {
			if vertices[v].Compare(uniqueVerts[u], K_FLOAT_EPSILON) {
				// Reassign indices, do not copy
				reassignIndex(indices, uint32(v)-foundCount, uint32(u))
				found = true
				foundCount++
				break
			}
		}

		if !found {
			uniqueVerts = append(uniqueVerts, vertices[v])
		}
	}

	core.LogDebug("geometry_deduplicate_vertices: removed %d vertices, orig/now %d/%d.", len(vertices)-len(uniqueVerts), len(vertices), len(uniqueVerts))

	return uniqueVerts
}
