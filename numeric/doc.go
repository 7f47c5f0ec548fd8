// Package numeric provides small, pure numeric helpers shared by the
// sketch sizing calculations: truncating a non-negative float to an
// unsigned integer after adding a small epsilon, which absorbs the
// floating-point deficit that derived quantities like f*log2(N)
// accumulate (it does not round to the nearest integer).
package numeric
