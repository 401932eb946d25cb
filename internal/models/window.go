package models

import "time"

// EligibilityWindow is the cooldown after a successful claim, tracked per
// (identity dimension, token).
const EligibilityWindow = 24 * time.Hour
