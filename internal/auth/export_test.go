package auth

import "time"

func (is *Issuer) SetClock(now func() time.Time) { is.now = now }
