package state

import "strings"

var (
	strZeroBytes32 = strings.Repeat("0", 64)

	// table that stores the life cycle of a swap, one row per order hash.
	// The secret is written before the counter-payment goes out, so a
	// crash between payment and withdrawal cannot lose it.
	swapTable = `CREATE TABLE IF NOT EXISTS swap (
		orderHash CHAR(64) PRIMARY KEY NOT NULL,
		status VARCHAR(20) NOT NULL,
		ethMaker CHAR(42) NOT NULL,
		xrplDestination VARCHAR(34) NOT NULL,
		ethAmount BIGINT UNSIGNED NOT NULL,
		xrplAmount VARCHAR(20) NOT NULL,
		safetyDeposit BIGINT UNSIGNED NOT NULL,
		srcWithdrawal BIGINT NOT NULL,
		srcCancellation BIGINT NOT NULL,
		dstWithdrawal BIGINT NOT NULL,
		dstCancellation BIGINT NOT NULL,
		secret CHAR(64),
		hashlock CHAR(64),
		escrowTxHash VARCHAR(66),
		paymentTxHash VARCHAR(66),
		withdrawTxHash VARCHAR(66),
		cancelTxHash VARCHAR(66),
		errorKind VARCHAR(30),
		errorMsg TEXT,
		createdAt BIGINT NOT NULL,
		updatedAt BIGINT NOT NULL,
		CONSTRAINT chk_status CHECK (status IN (
			'initiated', 'escrow_created', 'counter_paid',
			'awaiting_secret_ack', 'awaiting_timelock',
			'withdrawn', 'completed', 'cancelled', 'failed')),
		CONSTRAINT chk_ethAmount CHECK (ethAmount > 0),
		CONSTRAINT chk_orderHash CHECK (orderHash != '` + strZeroBytes32 + `')
	);`

	swapParamList = ` orderHash, status, ethMaker, xrplDestination, ethAmount,
		xrplAmount, safetyDeposit, srcWithdrawal, srcCancellation,
		dstWithdrawal, dstCancellation, secret, hashlock, escrowTxHash,
		paymentTxHash, withdrawTxHash, cancelTxHash, errorKind, errorMsg,
		createdAt, updatedAt `
)
