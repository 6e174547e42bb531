/*
Package resilience provides a circuit breaker for outbound calls.

# Usage

	breaker := resilience.New("cloud-api", resilience.Settings{
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts resilience.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		// Only failures to reach the server count
		IsSuccessful: func(err error) bool {
			return err == nil || !isConnectivity(err)
		},
	})

	err := breaker.Do(func() error {
		return call()
	})

# States

	Closed --[failures]-> Open --[timeout]-> Half-Open --[successes]-> Closed
	                                           |
	                                    [failure]
	                                           |
	                                           v
	                                         Open

Outcomes that complete after the breaker has moved to a new state or
interval are discarded.
*/
package resilience
