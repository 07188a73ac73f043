package pipeline

// progress tracks where the pipeline stands on the chain. It is only touched
// from the goroutine running notifications.
type progress struct {
	startBlock        uint32 // notifications for lower blocks are dropped until reached
	startBlockReached bool
	lastIrreversible  uint32 // 0 until the first irreversible block is published
}

func newProgress(startBlock uint32) progress {
	return progress{
		startBlock:        startBlock,
		startBlockReached: startBlock == 0,
	}
}

// admit reports whether a notification for blockNum must be processed. Once a
// block at or above the start block is seen, every later notification is
// admitted, even for lower blocks re-delivered after a fork switch.
func (p *progress) admit(blockNum uint32) bool {
	if !p.startBlockReached && blockNum >= p.startBlock {
		p.startBlockReached = true
	}

	return p.startBlockReached
}

// markIrreversible records blockNum as final and reports whether it advanced
// the last irreversible block.
func (p *progress) markIrreversible(blockNum uint32) bool {
	if blockNum <= p.lastIrreversible {
		return false
	}

	p.lastIrreversible = blockNum
	return true
}

// resumeFrom returns the first block to subscribe from given a stored
// checkpoint, never below the start block.
func (p *progress) resumeFrom(checkpoint uint32, found bool) uint32 {
	from := p.startBlock
	if found {
		p.lastIrreversible = checkpoint
		from = max(from, checkpoint+1)
	}

	return from
}
