package usecase

// SubscriptionPlan is a fixed monthly tier, priced in FCFA.
type SubscriptionPlan struct {
	Code         string `json:"code"`
	Label        string `json:"label"`
	MonthlyPrice int64  `json:"monthly_price"`
}

var subscriptionPlans = []SubscriptionPlan{
	{Code: "standard", Label: "Standard", MonthlyPrice: 1000},
	{Code: "premium", Label: "Premium", MonthlyPrice: 2500},
	{Code: "boutique", Label: "Boutique", MonthlyPrice: 5000},
}

func SubscriptionPlans() []SubscriptionPlan {
	plans := make([]SubscriptionPlan, len(subscriptionPlans))
	copy(plans, subscriptionPlans)
	return plans
}

func subscriptionPlanByCode(code string) (SubscriptionPlan, bool) {
	for _, plan := range subscriptionPlans {
		if plan.Code == code {
			return plan, true
		}
	}
	return SubscriptionPlan{}, false
}
