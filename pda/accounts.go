package pda

import (
	mxecall "github.com/wippyai/mxe-call"
)

// Deriver derives the well-known accounts of one MXE program under the
// computation-network program.
type Deriver struct {
	// Network owns every account except the signer.
	Network mxecall.Pubkey
	// MXEProgram is the program that queues computations.
	MXEProgram mxecall.Pubkey
}

// New returns a Deriver using the default network program.
func New(mxeProgram mxecall.Pubkey) Deriver {
	return Deriver{Network: ArciumProgram, MXEProgram: mxeProgram}
}

func (d Deriver) find(seeds ...[]byte) (mxecall.Pubkey, error) {
	addr, _, err := FindProgramAddress(seeds, d.Network)
	return addr, err
}

// MXE is the MXE account of the program.
func (d Deriver) MXE() (mxecall.Pubkey, error) {
	return d.find(SeedMXE, d.MXEProgram[:])
}

// Mempool is the program's pending-computation pool.
func (d Deriver) Mempool() (mxecall.Pubkey, error) {
	return d.find(SeedMempool, d.MXEProgram[:])
}

// Execpool is the program's executing-computation pool.
func (d Deriver) Execpool() (mxecall.Pubkey, error) {
	return d.find(SeedExecpool, d.MXEProgram[:])
}

// Computation is the account tracking one queued computation.
func (d Deriver) Computation(computationOffset uint64) (mxecall.Pubkey, error) {
	return d.find(SeedComputation, d.MXEProgram[:], le64(computationOffset))
}

// CompDef is the computation-definition account for a comp-def offset.
func (d Deriver) CompDef(compDefOffset uint32) (mxecall.Pubkey, error) {
	return d.find(SeedCompDef, d.MXEProgram[:], le32(compDefOffset))
}

// Cluster is the account of the node cluster an MXE is assigned to.
func (d Deriver) Cluster(clusterOffset uint32) (mxecall.Pubkey, error) {
	return d.find(SeedCluster, le32(clusterOffset))
}

// FeePool is the network-wide fee pool.
func (d Deriver) FeePool() (mxecall.Pubkey, error) {
	return d.find(SeedFeePool)
}

// Clock is the network-wide clock account.
func (d Deriver) Clock() (mxecall.Pubkey, error) {
	return d.find(SeedClock)
}

// Signer is the MXE program's own signing account. It is derived under the
// MXE program, not the network, and its bump is needed to sign the queue call.
func (d Deriver) Signer() (mxecall.Pubkey, uint8, error) {
	return FindProgramAddress([][]byte{SeedSigner}, d.MXEProgram)
}

// SignerSeeds returns the seeds the MXE program signs with.
func SignerSeeds(bump uint8) [][]byte {
	return [][]byte{SeedSigner, {bump}}
}
