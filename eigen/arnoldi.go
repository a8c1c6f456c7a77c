package eigen

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	vecmath "github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/mat"
)

// cycle runs one Arnoldi build-out from v followed by Ritz extraction and
// locking. It returns the accumulated restart direction (nil when nothing
// useful remains) and whether the Krylov space turned out invariant.
func (s *solver) cycle(a MatVec, v []float64) ([]float64, bool, error) {
	m := s.cfg.Subspace
	if avail := s.n - len(s.basis); m > avail {
		m = avail
	}

	if m < 1 {
		return nil, true, nil
	}

	basis := make([][]float64, m+1)
	basis[0] = v

	h := make([][]float64, m+1)
	for i := range h {
		h[i] = make([]float64, m)
	}

	mEff := m
	exact := false

	for j := range m {
		w := make([]float64, s.n)
		a.MulVec(w, basis[j])

		scale := norm(w)

		s.project(w)

		for i := 0; i <= j; i++ {
			hij := vecmath.DotProduct(basis[i], w)
			h[i][j] += hij
			s.axpy(w, basis[i], -hij)
		}

		// Second pass keeps the basis orthonormal against cancellation.
		for i := 0; i <= j; i++ {
			hij := vecmath.DotProduct(basis[i], w)
			h[i][j] += hij
			s.axpy(w, basis[i], -hij)
		}

		s.project(w)

		beta := norm(w)
		h[j+1][j] = beta

		if beta <= breakdownRel*scale {
			// Invariant subspace: the projected eigenvalues are exact.
			mEff = j + 1
			exact = true

			break
		}

		basis[j+1] = make([]float64, s.n)
		vecmath.ScaleBlock(basis[j+1], w, 1/beta)
	}

	values, vectors, err := hessenbergEigen(h, mEff)
	if err != nil {
		return nil, false, err
	}

	next := s.harvest(basis, values, vectors, mEff, math.Abs(h[mEff][mEff-1]))

	return next, exact, nil
}

// harvest walks the Ritz values by descending real part, locking converged
// ones among the wanted leaders and folding the rest into the restart
// direction.
func (s *solver) harvest(basis [][]float64, values []complex128, vectors *mat.CDense, mEff int, betaRes float64) []float64 {
	order := sortByRealDesc(values)
	used := make([]bool, len(values))

	var next []float64

	want := s.cfg.Modes - len(s.values)
	taken := 0

	for _, p := range order {
		if taken >= want {
			break
		}

		if used[p] {
			continue
		}

		used[p] = true
		theta := values[p]

		q := -1
		if imag(theta) != 0 {
			q = conjPartner(values, used, p)
			if q >= 0 {
				used[q] = true
			}
		}

		width := 1
		if q >= 0 {
			width = 2
		}

		resid := betaRes * cmplx.Abs(vectors.At(mEff-1, p))

		lockable := imag(theta) == 0 || q >= 0
		if lockable && resid <= s.cfg.Tol*max(1, cmplx.Abs(theta)) &&
			s.lock(basis, vectors, mEff, p, q, theta, resid) {
			taken += width
			continue
		}

		if next == nil {
			next = make([]float64, s.n)
		}

		s.addRitzDirection(next, basis, vectors, mEff, p, false)
		taken += width
	}

	return next
}

// lock appends the Ritz direction for theta (and its conjugate partner at
// column q when q >= 0) to the deflation basis. It reports false when the
// direction already lies inside the locked subspace.
func (s *solver) lock(basis [][]float64, vectors *mat.CDense, mEff, p, q int, theta complex128, resid float64) bool {
	u1 := make([]float64, s.n)
	s.addRitzDirection(u1, basis, vectors, mEff, p, false)

	if !s.adopt(u1) {
		return false
	}

	if q < 0 {
		s.values = append(s.values, theta)
		s.res = append(s.res, resid)

		return true
	}

	u2 := make([]float64, s.n)
	s.addRitzDirection(u2, basis, vectors, mEff, p, true)

	if !s.adopt(u2) {
		// Keep the pair whole: roll back the first direction.
		s.basis = s.basis[:len(s.basis)-1]
		return false
	}

	s.values = append(s.values, theta, complex(real(theta), -imag(theta)))
	s.res = append(s.res, resid, resid)

	return true
}

// addRitzDirection accumulates the real (or imaginary) part of the Ritz
// vector V*s for Hessenberg eigenvector column p into dst.
func (s *solver) addRitzDirection(dst []float64, basis [][]float64, vectors *mat.CDense, mEff, p int, imagPart bool) {
	for j := range mEff {
		c := vectors.At(j, p)

		coeff := real(c)
		if imagPart {
			coeff = imag(c)
		}

		if coeff != 0 {
			s.axpy(dst, basis[j], coeff)
		}
	}
}

// adopt orthonormalizes u against the locked basis and appends it. It
// reports false when u collapses into the existing subspace.
func (s *solver) adopt(u []float64) bool {
	nrm0 := norm(u)
	if nrm0 == 0 {
		return false
	}

	s.project(u)
	s.project(u)

	nrm := norm(u)
	if nrm <= 1e-8*nrm0 {
		return false
	}

	vecmath.ScaleBlockInPlace(u, 1/nrm)
	s.basis = append(s.basis, u)

	return true
}

// hessenbergEigen eigendecomposes the leading mEff block of h.
func hessenbergEigen(h [][]float64, mEff int) ([]complex128, *mat.CDense, error) {
	flat := make([]float64, mEff*mEff)
	for i := range mEff {
		copy(flat[i*mEff:(i+1)*mEff], h[i][:mEff])
	}

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(mEff, mEff, flat), mat.EigenRight); !ok {
		return nil, nil, fmt.Errorf("%w: projected eigenproblem failed (m=%d)", ErrNoConvergence, mEff)
	}

	values := eig.Values(nil)

	var vectors mat.CDense
	eig.VectorsTo(&vectors)

	return values, &vectors, nil
}

func sortByRealDesc(values []complex128) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		va, vb := values[order[a]], values[order[b]]
		if real(va) != real(vb) {
			return real(va) > real(vb)
		}

		return imag(va) > imag(vb)
	})

	return order
}

// conjPartner finds the unused conjugate of values[p], matching exactly or
// within roundoff of the expected value.
func conjPartner(values []complex128, used []bool, p int) int {
	want := complex(real(values[p]), -imag(values[p]))

	best := -1
	bestDist := math.MaxFloat64

	for j := range values {
		if used[j] || imag(values[j]) == 0 {
			continue
		}

		d := cmplx.Abs(values[j] - want)
		if d < bestDist {
			bestDist = d
			best = j
		}
	}

	if best >= 0 && bestDist <= 1e-12*(1+cmplx.Abs(want)) {
		return best
	}

	return -1
}
