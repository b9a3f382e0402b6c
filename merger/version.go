package merger

import (
	"strconv"
	"strings"

	"github.com/erraggy/scopetools/oaserrors"
)

// sumVersions adds two dotted version strings component-wise, so
// "1.2.0" + "0.1.5" yields "1.3.5". The shorter version is padded with
// zero components; the result always has as many components as the longer
// input. An empty version contributes nothing.
//
// A component that does not parse as an integer returns a
// *oaserrors.VersionError naming the offending version and component. The
// caller is expected to fill in the error's Source.
func sumVersions(a, b string) (string, error) {
	if a == "" {
		a = "0"
	}
	if b == "" {
		b = "0"
	}

	partsA := strings.Split(a, ".")
	partsB := strings.Split(b, ".")
	n := len(partsA)
	if len(partsB) > n {
		n = len(partsB)
	}

	sums := make([]string, n)
	for i := 0; i < n; i++ {
		compA, err := versionComponent(partsA, i, a)
		if err != nil {
			return "", err
		}
		compB, err := versionComponent(partsB, i, b)
		if err != nil {
			return "", err
		}
		sums[i] = strconv.Itoa(compA + compB)
	}
	return strings.Join(sums, "."), nil
}

// versionComponent parses component i of a split version, treating a
// missing component as zero.
func versionComponent(parts []string, i int, version string) (int, error) {
	if i >= len(parts) {
		return 0, nil
	}
	value, err := strconv.Atoi(parts[i])
	if err != nil {
		return 0, &oaserrors.VersionError{Value: version, Component: parts[i]}
	}
	return value, nil
}
