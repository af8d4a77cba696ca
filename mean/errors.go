package mean

import "github.com/katalvlaran/heavyedge/wasserstein"

// ErrEmptyDataset is returned when the source holds no profile. It is the
// same value as wasserstein.ErrEmptyDataset.
var ErrEmptyDataset = wasserstein.ErrEmptyDataset
