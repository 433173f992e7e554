package overrides

// Local is the overlay authored in source for day-to-day debugging. Keep it
// empty in committed code; overlay files loaded with LoadOverlay are the
// usual way to force values.
//
//	var Local = Overlay{
//		Opponent: OpponentOverlay{
//			Species: Set(Ptr(enums.SpeciesRayquaza)),
//			Level:   Set(100),
//		},
//	}
var Local = Overlay{}
