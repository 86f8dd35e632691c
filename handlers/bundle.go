package handlers

// HandlerBundle aggregates all HTTP handlers so route registration takes a
// single dependency.
type HandlerBundle struct {
	Auth          *AuthHandler
	Professionals *ProfessionalHandler
	Search        *SearchHandler
	Reviews       *ReviewHandler
	Subscriptions *SubscriptionHandler
	Admin         *AdminHandler
}
