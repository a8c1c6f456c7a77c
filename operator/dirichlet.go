package operator

// ApplyDirichlet rewrites the first and last rows as unit rows, encoding
// the fixed-value constraints u(0) = 0 and u(L) = 0. The rewrite happens
// in place: stored off-diagonal entries of the two rows become explicit
// zeros and the diagonal entry becomes 1. Calling it again is a no-op.
//
// The unit rows contribute two eigenvalues exactly equal to 1.0 to the
// spectrum. These carry no physical meaning and must be filtered by
// spectrum consumers.
func (m *Matrix) ApplyDirichlet() {
	m.enforceUnitRow(0)

	if m.n > 1 {
		m.enforceUnitRow(m.n - 1)
	}
}

func (m *Matrix) enforceUnitRow(i int) {
	hasDiag := false

	for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
		if m.colIdx[k] == i {
			m.data[k] = 1
			hasDiag = true
		} else {
			m.data[k] = 0
		}
	}

	if hasDiag {
		return
	}

	m.insertEntry(i, i, 1)
}

// insertEntry splices one stored entry into row i keeping column order.
// Only reached when the diagonal was absent from the row pattern.
func (m *Matrix) insertEntry(i, j int, v float64) {
	pos := m.rowPtr[i]
	for pos < m.rowPtr[i+1] && m.colIdx[pos] < j {
		pos++
	}

	m.colIdx = append(m.colIdx, 0)
	copy(m.colIdx[pos+1:], m.colIdx[pos:])
	m.colIdx[pos] = j

	m.data = append(m.data, 0)
	copy(m.data[pos+1:], m.data[pos:])
	m.data[pos] = v

	for r := i + 1; r <= m.n; r++ {
		m.rowPtr[r]++
	}
}
