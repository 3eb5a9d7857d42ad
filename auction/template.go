package auction

// The two contract skeletons below are the source of truth for the
// on-chain auction state machine. Placeholder names are case-sensitive
// and substituted whole; a trailing L after a placeholder is script
// text marking the literal as a long.
//
// Both guards share the same shape: (primary transition || refund
// transition) && submission-time staleness bound. The refund branch
// lets a participant recover all spent value, minus the fee reserve,
// into exactly one of exactly two outputs when the primary path is not
// taken.

const auctionScriptTemplate = `{
  val userAddress = fromBase64("$userAddress")
  val bidAmount = $bidAmountL
  val endTime = $endTimeL
  val bidDelta = $bidDeltaL
  val currencyId = fromBase64("$currencyId")
  val buyItNow = $buyItNow
  val startAuction = {
      OUTPUTS(0).tokens.size > 0 &&
      OUTPUTS(0).R4[Coll[Byte]].getOrElse(INPUTS(0).id) == userAddress &&
      OUTPUTS(0).R5[Coll[Byte]].getOrElse(INPUTS(0).id) == userAddress &&
      OUTPUTS(0).R6[Coll[Long]].get(0) == bidAmount &&
      OUTPUTS(0).R6[Coll[Long]].get(1) == bidDelta &&
      OUTPUTS(0).R7[Long].getOrElse(0L) == endTime &&
      OUTPUTS(0).R8[Long].getOrElse(0L) == buyItNow &&
      (currencyId.size == 0 || (currencyId.size > 0 && OUTPUTS(0).tokens(1)._1 == currencyId))
  }
  val returnFunds = {
    val total = INPUTS.fold(0L, {(x:Long, b:Box) => x + b.value}) - $feeReserve
    OUTPUTS(0).value >= total && OUTPUTS(0).propositionBytes == userAddress && OUTPUTS.size == 2
  }
  sigmaProp((startAuction || returnFunds) && HEIGHT < $timestampL)
}`

const bidScriptTemplate = `{
  val userAddress = PK("$userAddress")
  val bidAmount = $bidAmountL
  val currencyId = fromBase64("$currencyId")
  val placeBid = {
    INPUTS(INPUTS.size - 1).id == fromBase64("$auctionId") &&
      OUTPUTS(0).R5[Coll[Byte]].get == userAddress.propBytes &&
      ((currencyId.size == 0 && OUTPUTS(0).value == bidAmount) ||
         (OUTPUTS(0).tokens(1)._1 == currencyId && OUTPUTS(0).tokens(1)._2 == bidAmount))
  }
  val returnFunds = {
    val total = INPUTS.fold(0L, {(x:Long, b:Box) => x + b.value}) - $feeReserve
    OUTPUTS(0).value >= total && OUTPUTS(0).propositionBytes == userAddress.propBytes && OUTPUTS.size == 2
  }
  sigmaProp((placeBid || returnFunds) && HEIGHT < $timestampL)
}`
