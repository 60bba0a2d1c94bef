package model

// All returns every model managed by the persistence layer, in migration order.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&SessionModel{},
		&PasswordResetModel{},
		&CategoryModel{},
		&CreditCardModel{},
		&ExpenseModel{},
		&RecurringExpenseModel{},
		&IncomeModel{},
		&InvestmentModel{},
		&ThresholdModel{},
		&AlertNotificationModel{},
		&EmailQueueModel{},
	}
}
