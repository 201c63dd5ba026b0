// Package models defines the domain records of the joint tax calculator.
//
// # Inputs
//
// A JointConfiguration is the single aggregate root. It holds the inputs of
// the two people filing jointly:
//   - PersonAInputs: self-employed profit, health insurance already paid,
//     donations, standard deduction and the deductible business expenses
//   - PersonBInputs: employment income, wage tax already withheld (manual or
//     derived), private insurance, donations and standard deduction
//
// A configuration is treated as an immutable snapshot while a computation
// runs. Callers replace it wholesale on every edit; there is no history.
//
// # Outputs
//
//   - ComputationResult: joint base, tax, surcharge, fair shares and the
//     amounts still outstanding per person
//   - SettlementSummary: the tax saving generated by the expenses marked for
//     settlement and how it is shared between both people
//   - TableRow: one line of the splitting table
//
// Outputs are derived on demand and never mutated in place.
//
// # Amounts
//
// All monetary values are float64 in a single implicit currency (EUR).
// Negative or non-finite inputs are clamped to zero by the calculator.
package models
