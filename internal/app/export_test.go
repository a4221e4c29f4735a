package app

import "time"

func SetClock(s *PlanService, now func() time.Time) { s.now = now }

func SetMediaID(s *PlanService, id func() string) { s.mediaID = id }

var MapBundle = mapBundle
