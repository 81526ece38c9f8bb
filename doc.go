// Package fintrack provides the calculation engine for a personal finance
// tracker covering four ledgers: budgets, debts, income, and investments.
// It is designed to be local-first and auditable: the source of truth is an
// append-only journal of records, and every summary figure is derived from
// it on demand.
//
// The core functionalities include:
//   - Budget Tracking: applying expenses to period-bounded budgets and
//     deriving progress, remaining headroom, and one-shot threshold alerts.
//   - Debt Payoff Tracking: applying payments to debts and projecting the
//     payoff date with a declining-balance amortization estimate.
//   - Income Recurrence: classifying income records as recurring or one-time
//     and computing their next expected occurrence.
//   - Investment Valuation: maintaining cost basis and quantity under
//     buy/sell/SIP activity and deriving profit/loss, annualized return,
//     and portfolio aggregates.
//   - Journal Persistence: encoding and decoding all records to and from a
//     human-readable, version-controllable JSONL file.
//
// This package serves as the foundational logic for the `fin` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package fintrack
