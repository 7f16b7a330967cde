package specification

// EventNameEquals scopes event queries to a single event name.
func EventNameEquals(name string) Specification {
	return FilterBy{Field: "event_name", Value: name}
}
