package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/soniya-kolvekar/finman"
)

// IncomeMarkdown renders all income records and their total.
func IncomeMarkdown(l *finman.Ledger, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Income Records")
	incomes := l.Incomes()
	if len(incomes) == 0 {
		doc.PlainText("No income records found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft},
		Header:    []string{"#", "Amount", "Source", "Date"},
	}
	for i, in := range incomes {
		table.Rows = append(table.Rows, []string{v.ordinal(i), v.money(in.Amount), in.Source, in.Date.String()})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total Income: %s", v.money(l.TotalIncome())))
	return doc.String()
}

// ExpensesMarkdown renders all expense records and their total.
func ExpensesMarkdown(l *finman.Ledger, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Expense Records")
	expenses := l.Expenses()
	if len(expenses) == 0 {
		doc.PlainText("No expense records found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignRight, md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"#", "Amount", "Category", "Description", "Date"},
	}
	for i, e := range expenses {
		table.Rows = append(table.Rows, []string{v.ordinal(i), v.money(e.Amount), e.Category, e.Description, e.Date.String()})
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("Total Expenses: %s", v.money(l.TotalExpenses())))
	return doc.String()
}

// BudgetMarkdown renders the remaining allocation per category.
func BudgetMarkdown(l *finman.Ledger, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Budget Allocation")
	cats := l.BudgetCategories()
	if len(cats) == 0 {
		doc.PlainText("No budgets set.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Category", "Remaining"},
	}
	for _, c := range cats {
		remaining, _ := l.Budget(c)
		table.Rows = append(table.Rows, []string{c, v.money(remaining)})
	}
	doc.Table(table)
	return doc.String()
}

// GoalsMarkdown renders every savings goal and its progress.
func GoalsMarkdown(l *finman.Ledger, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Savings Goals")
	goals := l.Summarize().Goals
	if len(goals) == 0 {
		doc.PlainText("No savings goals set.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Goal", "Target", "Saved", "Remaining"},
	}
	for _, p := range goals {
		table.Rows = append(table.Rows, []string{p.Name, v.money(p.Target), v.money(p.Saved), v.money(p.Remaining)})
	}
	doc.Table(table)
	return doc.String()
}

// InvestmentsMarkdown renders every investment with its current value.
func InvestmentsMarkdown(l *finman.Ledger, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investments")
	investments := l.Investments()
	if len(investments) == 0 {
		doc.PlainText("No investments found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight},
		Header:    []string{"#", "Type", "Amount", "Start Date", "Current Value"},
	}
	for i, inv := range investments {
		table.Rows = append(table.Rows, []string{
			v.ordinal(i), inv.Type, v.money(inv.Amount), inv.StartDate.String(), v.money(inv.CurrentValue),
		})
	}
	doc.Table(table)
	return doc.String()
}

// LoansMarkdown renders every loan with its EMI and outstanding amount.
func LoansMarkdown(l *finman.Ledger, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Loans")
	loans := l.Loans()
	if len(loans) == 0 {
		doc.PlainText("No loans found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"#", "Name", "Principal", "Rate", "Tenure", "EMI", "Remaining"},
	}
	for i, loan := range loans {
		table.Rows = append(table.Rows, []string{
			v.ordinal(i), loan.Name, v.money(loan.Principal), loan.Rate.String(),
			fmt.Sprintf("%d years", loan.TenureYears), v.money(loan.EMI), v.money(loan.Remaining),
		})
	}
	doc.Table(table)
	return doc.String()
}

// DebtsMarkdown renders every debt with its due date and outstanding amount.
func DebtsMarkdown(l *finman.Ledger, currency string) string {
	v := view{currency}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Debts")
	debts := l.Debts()
	if len(debts) == 0 {
		doc.PlainText("No debts found.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"#", "Name", "Amount", "Due Date", "Paid", "Remaining"},
	}
	for i, debt := range debts {
		table.Rows = append(table.Rows, []string{
			v.ordinal(i), debt.Name, v.money(debt.Amount), debt.DueDate.String(),
			v.money(debt.Paid), v.money(debt.Remaining()),
		})
	}
	doc.Table(table)
	return doc.String()
}
