package catalog

// purposeCodes is the full UAEFTS AUX700 purpose-code table (117 codes).
var purposeCodes = []PurposeCode{
	// Salary and Compensation
	{Code: "SAL", Name: "Salary Payment", Category: "SAL", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "SAA", Name: "Salary Advance", Category: "SAL", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "BON", Name: "Bonus Payment", Category: "SAL", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "COP", Name: "Compensation", Category: "SAL", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "LAS", Name: "Leave Salary", Category: "SAL", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "PEN", Name: "Pension", Category: "SAL", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "OVT", Name: "Overtime", Category: "SAL", AppliesDomestic: true, AppliesOffshore: true},

	// Family Maintenance
	{Code: "FAM", Name: "Family Support (Workers Remittances)", Category: "FAM", AppliesOffshore: true},
	{Code: "TOF", Name: "Transfer of Funds Between Persons", Category: "FAM", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "OAT", Name: "Own Account Transfer", Category: "FAM", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "AE015", Name: "Family Support", Category: "FAM", AppliesOffshore: true},

	// Goods - Export / Import
	{Code: "GDE", Name: "Goods Sold (Export)", Category: "GDE", AppliesOffshore: true},
	{Code: "GDI", Name: "Goods Bought (Import)", Category: "GDI", AppliesOffshore: true},
	{Code: "GMS", Name: "Processing Repair and Maintenance on Goods", Category: "GDE", AppliesOffshore: true},
	{Code: "GOS", Name: "Government Goods and Services", Category: "GDE", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "PIP", Name: "Profits on Islamic Products", Category: "GDE", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "TCP", Name: "Trade Credits and Advances Payable", Category: "GDI", AppliesOffshore: true},
	{Code: "TCR", Name: "Trade Credits and Advances Receivable", Category: "GDE", AppliesOffshore: true},

	// Services
	{Code: "AE001", Name: "Consulting Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "AE002", Name: "Legal Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "IFS", Name: "Information Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "ITS", Name: "Computer Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "PMS", Name: "Professional and Management Consulting", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "RDS", Name: "Research and Development Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "TCS", Name: "Telecommunication Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "TTS", Name: "Technical Trade-Related Business Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "FIS", Name: "Financial Services", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "COM", Name: "Commission", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "ACM", Name: "Agency Commissions", Category: "SRV", AppliesDomestic: true, AppliesOffshore: true},

	// Travel and Transport
	{Code: "ATS", Name: "Air Transport", Category: "TRV", AppliesOffshore: true},
	{Code: "STS", Name: "Sea Transport", Category: "TRV", AppliesOffshore: true},
	{Code: "STR", Name: "Travel", Category: "TRV", AppliesOffshore: true},
	{Code: "OTS", Name: "Other Modes of Transport", Category: "TRV", AppliesOffshore: true},

	// Education
	{Code: "EDU", Name: "Educational Support", Category: "EDU", AppliesOffshore: true},
	{Code: "TKT", Name: "Tickets", Category: "EDU", AppliesOffshore: true},

	// Charity
	{Code: "CHC", Name: "Charitable Contributions", Category: "CHR", AppliesOffshore: true},
	{Code: "ALW", Name: "Allowance", Category: "CHR", AppliesDomestic: true, AppliesOffshore: true},

	// Dividends
	{Code: "DIV", Name: "Dividend Payouts from FI", Category: "DIV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "DOE", Name: "Dividends on Equity Not Intragroup", Category: "DIV", AppliesOffshore: true},
	{Code: "IGD", Name: "Dividends Intragroup", Category: "DIV", AppliesOffshore: true},
	{Code: "AE025", Name: "Investment Income - Dividends", Category: "DIV", AppliesOffshore: true},

	// Interest
	{Code: "IOL", Name: "Income on Loans", Category: "INT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "IOD", Name: "Income on Deposits", Category: "INT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "IPC", Name: "Charges for Use of Intellectual Property", Category: "INT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "IGT", Name: "Inter Group Transfer", Category: "INT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "IID", Name: "Interest on Debt Intragroup", Category: "INT", AppliesOffshore: true},
	{Code: "IRP", Name: "Interest Rate Swap Payments", Category: "INT", AppliesOffshore: true},
	{Code: "IRW", Name: "Interest Rate Unwind Payments", Category: "INT", AppliesOffshore: true},
	{Code: "ISL", Name: "Interest on Securities > 1 Year", Category: "INT", AppliesOffshore: true},
	{Code: "ISS", Name: "Interest on Securities < 1 Year", Category: "INT", AppliesOffshore: true},
	{Code: "LIP", Name: "Loan Interest Payments", Category: "INT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "LNC", Name: "Loan Charges", Category: "INT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "LND", Name: "Loan Disbursements from FI", Category: "INT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "DLF", Name: "Debt Instruments Intragroup - Foreign Deposits", Category: "INT", AppliesOffshore: true},
	{Code: "LDL", Name: "Debt Instruments Intragroup - UAE Deposits", Category: "INT", AppliesDomestic: true},

	// Loans
	{Code: "LLA", Name: "Long-term Loans to Non-Residents", Category: "LNR", AppliesOffshore: true, RequiresLEI: true},
	{Code: "LLL", Name: "Long-term Foreign Loans to Residents", Category: "LNR", AppliesOffshore: true, RequiresLEI: true},
	{Code: "SLA", Name: "Short-term Loans to Non-Residents", Category: "LNR", AppliesOffshore: true},
	{Code: "SLL", Name: "Short-term Foreign Loans to Residents", Category: "LNR", AppliesOffshore: true},
	{Code: "PRP", Name: "Profit Rate Swap Payments", Category: "LNR", AppliesOffshore: true},
	{Code: "PRW", Name: "Profit Rate Unwind Payments", Category: "LNR", AppliesOffshore: true},

	// Investment
	{Code: "CEA", Name: "Equity in Company Abroad - Residents", Category: "INV", AppliesOffshore: true, RequiresLEI: true},
	{Code: "CEL", Name: "Equity in Company Abroad - Non-Residents", Category: "INV", AppliesOffshore: true, RequiresLEI: true},
	{Code: "FSA", Name: "Equity Shares in Foreign Companies", Category: "INV", AppliesOffshore: true, RequiresLEI: true},
	{Code: "FSL", Name: "Equity Shares in UAE Companies", Category: "INV", AppliesDomestic: true, RequiresLEI: true},
	{Code: "FIA", Name: "Investment Fund Shares - Foreign", Category: "INV", AppliesOffshore: true, RequiresLEI: true},
	{Code: "FIL", Name: "Investment Fund Shares - UAE", Category: "INV", AppliesDomestic: true, RequiresLEI: true},
	{Code: "DLA", Name: "Foreign Debt Securities > 1 Year", Category: "INV", AppliesOffshore: true, RequiresLEI: true},
	{Code: "DSA", Name: "Foreign Debt Securities < 1 Year", Category: "INV", AppliesOffshore: true},
	{Code: "DLL", Name: "Resident Debt Securities > 1 Year", Category: "INV", AppliesDomestic: true},
	{Code: "DSL", Name: "Resident Debt Securities < 1 Year", Category: "INV", AppliesDomestic: true},
	{Code: "DSF", Name: "Debt Instruments Intragroup - Foreign Securities", Category: "INV", AppliesOffshore: true},
	{Code: "LDS", Name: "Debt Instruments Intragroup - UAE Securities", Category: "INV", AppliesDomestic: true},
	{Code: "FDA", Name: "Financial Derivatives - Foreign", Category: "INV", AppliesOffshore: true},
	{Code: "FDL", Name: "Financial Derivatives - UAE", Category: "INV", AppliesDomestic: true},
	{Code: "ISH", Name: "Income on Investment Fund Shares", Category: "INV", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "CIN", Name: "Commercial Investments", Category: "INV", AppliesDomestic: true, AppliesOffshore: true},

	// Cards and Digital Payments
	{Code: "CCP", Name: "Corporate Card Payments", Category: "CRD", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "CRP", Name: "Credit Card Payment", Category: "CRD", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "DCP", Name: "Debit Card Payments", Category: "CRD", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "MWI", Name: "Mobile Wallet Cash-in", Category: "CRD", AppliesDomestic: true},
	{Code: "MWO", Name: "Mobile Wallet Cash-out", Category: "CRD", AppliesDomestic: true},
	{Code: "MWP", Name: "Mobile Wallet Payments", Category: "CRD", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "SVI", Name: "Stored Value Card Cash-in", Category: "CRD", AppliesDomestic: true},
	{Code: "SVO", Name: "Stored Value Card Cash-out", Category: "CRD", AppliesDomestic: true},
	{Code: "SVP", Name: "Stored Value Card Payments", Category: "CRD", AppliesDomestic: true, AppliesOffshore: true},

	// Rent and Real Estate
	{Code: "LEA", Name: "Leasing Abroad", Category: "RNT", AppliesOffshore: true},
	{Code: "LEL", Name: "Leasing in UAE", Category: "RNT", AppliesDomestic: true},
	{Code: "RNT", Name: "Rent Payments", Category: "RNT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "PRR", Name: "Profits or Rents on Real Estate", Category: "RNT", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "PPA", Name: "Purchase Real Estate Abroad from Residents", Category: "RNT", AppliesOffshore: true, RequiresLEI: true},
	{Code: "PPL", Name: "Purchase Real Estate in UAE from Non-Residents", Category: "RNT", AppliesDomestic: true},

	// Insurance
	{Code: "INS", Name: "Insurance Services", Category: "INS", AppliesDomestic: true, AppliesOffshore: true},

	// Tax
	{Code: "GRI", Name: "Government Related - Taxes, Tariffs, Capital Transfers", Category: "TAX", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "TAX", Name: "Tax Payment (Domestic Only)", Category: "TAX", AppliesDomestic: true},
	{Code: "XAT", Name: "Tax Refund", Category: "TAX", AppliesDomestic: true, AppliesOffshore: true},

	// Personal Accounts
	{Code: "AFA", Name: "Personal Resident Bank Account Abroad", Category: "OTH", AppliesOffshore: true},
	{Code: "AFL", Name: "Personal Non-Resident Bank Account in UAE", Category: "OTH", AppliesDomestic: true},

	// Reversals and Corrections
	{Code: "RDA", Name: "Reverse Debt Instruments Abroad", Category: "OTH", AppliesOffshore: true},
	{Code: "RDL", Name: "Reverse Debt Instruments in UAE", Category: "OTH", AppliesDomestic: true},
	{Code: "REA", Name: "Reverse Equity Share Abroad", Category: "OTH", AppliesOffshore: true},
	{Code: "REL", Name: "Reverse Equity Share in UAE", Category: "OTH", AppliesDomestic: true},
	{Code: "RFS", Name: "Repos on Foreign Securities", Category: "OTH", AppliesOffshore: true},
	{Code: "RLS", Name: "Repos on Securities Issued by Residents", Category: "OTH", AppliesDomestic: true},
	{Code: "POR", Name: "Refunds/Reversals on IPO Subscriptions", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},

	// Miscellaneous
	{Code: "AES", Name: "Advance Payment Against EOS", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "CBP", Name: "Cross Border Payments", Category: "OTH", AppliesOffshore: true},
	{Code: "EMI", Name: "Equated Monthly Installments", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "EOS", Name: "End of Service / Final Settlement", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "IPO", Name: "IPO Subscriptions", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "MCR", Name: "Monetary Claim Reimbursements", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "PIN", Name: "Personal Investments", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "POS", Name: "POS Merchant Settlement", Category: "OTH", AppliesDomestic: true},
	{Code: "SCO", Name: "Construction", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "UFP", Name: "Unclaimed Funds Placement", Category: "OTH", AppliesDomestic: true},
	{Code: "UTL", Name: "Utility Bill Payments", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
	{Code: "OTH", Name: "Other Payments", Category: "OTH", AppliesDomestic: true, AppliesOffshore: true},
}
