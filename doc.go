// Package otf2 reads OTF2 traces through a native reading engine.
//
// A trace is opened from its anchor file with Open. Global definitions are
// read once per Reader, either materialized with ReadDefinitions or
// dispatched to visitors with VisitDefinitions. Events are pulled in
// batches from an EventReader, which selects a set of locations and then
// exposes their merged stream as an EventIter:
//
//	r, err := otf2.Open("trace/traces.otf2")
//	if err != nil {
//		return err
//	}
//	defer r.Close()
//
//	er, err := r.EventReader(1024)
//	if err != nil {
//		return err
//	}
//	it, err := er.Events()
//	if err != nil {
//		return err
//	}
//	for ev := range it.All() {
//		fmt.Println(ev.Time, ev.Record.Kind())
//	}
//	return it.Err()
//
// Nothing in this package logs. Visitors returning a code other than
// CallbackSuccess stop the native read loop in progress and the read
// reports a *StopError.
package otf2
