package main

// dispatchSyscall handles ECALL: the guest places the call ID in R[17]
// and up to four arguments in R[10..13], and this switches on the ID,
// invokes the matching handler, and writes its return value back to
// R[10]. Handlers that return void leave R[10] unchanged.
func (vm *VM) dispatchSyscall() {
	id := vm.Regs.Get(regA7)
	a0 := vm.Regs.Get(regA0)
	a1 := vm.Regs.Get(regA1)
	a2 := vm.Regs.Get(regA2)
	a3 := vm.Regs.Get(regA3)
	s0, s1, s2, s3 := int64(a0), int64(a1), int64(a2), int64(a3)

	var ret uint64
	hasRet := true

	switch id {
	// IO
	case IO_PRINTS:
		vm.ioPrints(a0)
		hasRet = false
	case IO_PRINTN:
		vm.ioPrintn(s0)
		hasRet = false
	case IO_PRINTD:
		vm.ioPrintd(a0)
		hasRet = false
	case IO_READCH:
		ret = vm.ioReadch()
	case IO_READLINE:
		ret = vm.ioReadline()
	case IO_READ:
		ret = vm.ioRead()
	case IO_AVAILABLE:
		ret = vm.ioAvailable()
	case IO_PEEK:
		ret = vm.ioPeek()
	case IO_FIND:
		ret = vm.ioFind(byte(a0))
	case IO_FIND_UNTIL:
		ret = vm.ioFindUntil(byte(a0), byte(a1))
	case IO_SET_TIMEOUT:
		vm.ioSetTimeout(s0)
		hasRet = false
	case IO_GET_TIMEOUT:
		ret = vm.ioGetTimeout()

	// Sys
	case SYS_DELAY_MS:
		vm.sysDelayMs(s0)
		hasRet = false
	case SYS_MICROS:
		ret = vm.Facilities.Sys.Micros()
	case SYS_MILLIS:
		ret = vm.Facilities.Sys.Millis()
	case SYS_SHELLEXEC:
		cmd, err := vm.readGuestString(a0, 1024)
		if err != nil {
			vm.panicVM("shell_exec: bad pointer")
			return
		}
		ret = boolToU64(vm.Facilities.Sys.ShellExec(cmd))
	case SYS_EXIT:
		vm.sysExit(s0)
		hasRet = false
	case SYS_INFO_STR:
		ret = uint64(vm.strStream.begin(vm.Facilities.Sys.InfoStr(s0)))
	case SYS_INFO_NUM:
		ret = uint64(vm.Facilities.Sys.InfoNum(s0))
	case SYS_RANDOM:
		ret = vm.Facilities.Sys.Random()
	case SYS_CHANGE_DIR:
		ret = vm.sysChangeDir(a0)
	case SYS_WORKING_DIR:
		ret = vm.sysWorkingDir()

	// Mem
	case MEM_ALLOC:
		ret = vm.memAlloc(a0)
	case MEM_CALLOC:
		ret = vm.memCalloc(a0, a1)
	case MEM_REALLOC:
		ret = vm.memRealloc(a0, a1)
	case MEM_FREE:
		vm.memFree(a0)
		hasRet = false
	case MEM_SET:
		vm.memSet(a0, a1, a2)
		hasRet = false

	// GPIO
	case GPIO_PIN_MODE:
		vm.gpioPinMode(s0, s1)
		hasRet = false
	case GPIO_DIGITAL_READ:
		ret = uint64(vm.gpioDigitalRead(s0))
	case GPIO_DIGITAL_WRITE:
		vm.gpioDigitalWrite(s0, s1)
		hasRet = false
	case GPIO_ANALOG_READ:
		ret = uint64(vm.gpioAnalogRead(s0))
	case GPIO_ANALOG_WRITE:
		vm.gpioAnalogWrite(s0, s1)
		hasRet = false
	case GPIO_PULSE_IN, GPIO_PULSE_IN_LONG:
		ret = uint64(vm.gpioPulseIn(s0, s1, s2))
	case GPIO_SHIFT_IN:
		ret = uint64(vm.gpioShiftIn(s0, s1, s2))
	case GPIO_SHIFT_OUT:
		vm.gpioShiftOut(s0, s1, s2, s3)
		hasRet = false
	case GPIO_TONE:
		vm.gpioTone(s0, s1)
		hasRet = false
	case GPIO_NO_TONE:
		vm.gpioNoTone(s0)
		hasRet = false

	// Int
	case INT_ENABLE:
		vm.intEnable()
		hasRet = false
	case INT_DISABLE:
		vm.intDisable()
		hasRet = false
	case INT_ATTACH:
		ret = vm.intAttach(s0, s1)
	case INT_DETACH:
		ret = vm.intDetach(s0)

	// FS
	case FS_MKDIR:
		ret = vm.fsMkdir(a0)
	case FS_RMDIR:
		ret = vm.fsRmdir(a0)
	case FS_DELETE:
		ret = vm.fsDelete(a0)
	case FS_EXISTS:
		ret = vm.fsExists(a0)
	case FS_IS_FILE:
		ret = vm.fsIsFile(a0)
	case FS_IS_DIR:
		ret = vm.fsIsDir(a0)
	case FS_OPEN:
		ret = vm.fsOpen(a0, s1)
	case FS_CLOSE:
		ret = vm.fsClose(s0)
	case FS_AVAILABLE:
		ret = uint64(vm.fsAvailable(s0))
	case FS_FLUSH:
		ret = vm.fsFlush(s0)
	case FS_PEEK:
		ret = uint64(vm.fsPeek(s0))
	case FS_SEEK:
		ret = vm.fsSeek(s0, s1)
	case FS_SIZE:
		ret = uint64(vm.fsSize(s0))
	case FS_READ:
		ret = uint64(vm.fsRead(s0))
	case FS_WRITE_BYTE:
		ret = vm.fsWriteByte(s0, byte(a1))
	case FS_WRITE_STRING:
		ret = uint64(vm.fsWriteString(s0, a1))
	case FS_POSITION:
		ret = uint64(vm.fsPosition(s0))
	case FS_PATH:
		ret = vm.fsPath(s0)
	case FS_NAME:
		ret = vm.fsName(s0)
	case FS_NEXT:
		ret = vm.fsNext(s0)
	case FS_BUFSIZE:
		ret = uint64(vm.fsBufsize(s0))
	case FS_LASTWRITE:
		ret = uint64(vm.fsLastwrite(s0))
	case FS_SEEK_DIR:
		ret = vm.fsSeekDir(s0, s1)
	case FS_NEXT_NAME:
		ret = vm.fsNextName(s0)
	case FS_REWIND:
		ret = vm.fsRewind(s0)

	// Args
	case ARGS_COUNT:
		ret = vm.argsCount()
	case ARGS_STR:
		ret = vm.argsStr(s0)

	// I2C
	case I2C_BEGIN:
		ret = vm.i2cBegin()
	case I2C_END:
		vm.i2cEnd()
		hasRet = false
	case I2C_BEGIN_TRANSMISSION:
		vm.i2cBeginTransmission(s0)
		hasRet = false
	case I2C_END_TRANSMISSION:
		ret = uint64(vm.i2cEndTransmission())
	case I2C_WRITE:
		ret = vm.i2cWrite(byte(a0))
	case I2C_SLAVE_WRITE:
		ret = vm.i2cSlaveWrite(byte(a0))
	case I2C_READ:
		ret = uint64(vm.i2cRead())
	case I2C_PEEK:
		ret = uint64(vm.i2cPeek())
	case I2C_REQUEST:
		ret = uint64(vm.i2cRequest(s0, s1))
	case I2C_AVAILABLE:
		ret = uint64(vm.i2cAvailable())
	case I2C_FLUSH:
		vm.i2cFlush()
		hasRet = false
	case I2C_ON_RECEIVE:
		vm.i2cOnReceive(a0)
		hasRet = false
	case I2C_ON_REQUEST:
		vm.i2cOnRequest(a0)
		hasRet = false
	case I2C_GET_TIMEOUT:
		ret = uint64(vm.i2cGetTimeout())
	case I2C_SET_TIMEOUT:
		vm.i2cSetTimeout(s0)
		hasRet = false
	case I2C_GET_CLOCK:
		ret = uint64(vm.i2cGetClock())
	case I2C_SET_CLOCK:
		vm.i2cSetClock(s0)
		hasRet = false
	case I2C_PINS:
		vm.i2cPins(s0, s1)
		hasRet = false
	case I2C_BUFSIZE:
		ret = uint64(vm.i2cBufsize())

	// Keyboard
	case KB_LAYOUT_NAME:
		ret = vm.kbLayoutName()
	case KB_LAYOUT_DESC:
		ret = vm.kbLayoutDesc()
	case KB_LED_GET_NUM:
		ret = vm.kbLedGetNum()
	case KB_LED_GET_CAPS:
		ret = vm.kbLedGetCaps()
	case KB_LED_GET_SCROLL:
		ret = vm.kbLedGetScroll()
	case KB_LED_SET_NUM:
		vm.kbLedSetNum(s0)
		hasRet = false
	case KB_LED_SET_CAPS:
		vm.kbLedSetCaps(s0)
		hasRet = false
	case KB_LED_SET_SCROLL:
		vm.kbLedSetScroll(s0)
		hasRet = false
	case KB_NEXT_SCANCODE:
		ret = uint64(vm.kbNextScancode())
	case KB_DEVICE_TYPE:
		ret = uint64(vm.kbDeviceType())
	case KB_LOCK:
		vm.kbLock()
		hasRet = false
	case KB_UNLOCK:
		vm.kbUnlock()
		hasRet = false
	case KB_RESET:
		vm.kbReset()
		hasRet = false

	// Display
	case DISPLAY_SCREEN_HEIGHT:
		ret = uint64(vm.displayScreenHeight())
	case DISPLAY_SCREEN_WIDTH:
		ret = uint64(vm.displayScreenWidth())
	case DISPLAY_VIEWPORT_HEIGHT:
		ret = uint64(vm.displayViewportHeight())
	case DISPLAY_VIEWPORT_WIDTH:
		ret = uint64(vm.displayViewportWidth())
	case DISPLAY_SUPPORTED_COLORS:
		ret = uint64(vm.displaySupportedColors())

	// NVS
	case NVS_ERASE:
		ret = vm.nvsErase(a0)
	case NVS_ERASE_ALL:
		vm.nvsEraseAll()
		hasRet = false
	case NVS_SET_I8:
		vm.nvsSetI8(a0, s1)
		hasRet = false
	case NVS_SET_I16:
		vm.nvsSetI16(a0, s1)
		hasRet = false
	case NVS_SET_I32:
		vm.nvsSetI32(a0, s1)
		hasRet = false
	case NVS_SET_I64:
		vm.nvsSetI64(a0, s1)
		hasRet = false
	case NVS_SET_U8:
		vm.nvsSetU8(a0, a1)
		hasRet = false
	case NVS_SET_U16:
		vm.nvsSetU16(a0, a1)
		hasRet = false
	case NVS_SET_U32:
		vm.nvsSetU32(a0, a1)
		hasRet = false
	case NVS_SET_U64:
		vm.nvsSetU64(a0, a1)
		hasRet = false
	case NVS_SET_STRING:
		vm.nvsSetString(a0, a1)
		hasRet = false
	case NVS_GET_I8:
		ret = uint64(vm.nvsGetI8(a0))
	case NVS_GET_I16:
		ret = uint64(vm.nvsGetI16(a0))
	case NVS_GET_I32:
		ret = uint64(vm.nvsGetI32(a0))
	case NVS_GET_I64:
		ret = uint64(vm.nvsGetI64(a0))
	case NVS_GET_U8:
		ret = vm.nvsGetU8(a0)
	case NVS_GET_U16:
		ret = vm.nvsGetU16(a0)
	case NVS_GET_U32:
		ret = vm.nvsGetU32(a0)
	case NVS_GET_U64:
		ret = vm.nvsGetU64(a0)
	case NVS_GET_STRING:
		ret = vm.nvsGetString(a0)
	case NVS_COMMIT:
		ret = vm.nvsCommit()
	case NVS_HAS_WIFI_CONFIG:
		ret = vm.nvsHasWifiConfig()
	case NVS_SET_WIFI_SSID:
		vm.nvsSetWifiSSID(a0)
		hasRet = false
	case NVS_SET_WIFI_PWORD:
		vm.nvsSetWifiPword(a0)
		hasRet = false

	// SPI
	case SPI_BEGIN:
		ret = vm.spiBegin()
	case SPI_END:
		vm.spiEnd()
		hasRet = false
	case SPI_BEGIN_TRANSACTION:
		vm.spiBeginTransaction(s0, s1, s2)
		hasRet = false
	case SPI_END_TRANSACTION:
		vm.spiEndTransaction()
		hasRet = false
	case SPI_TRANSFER8:
		ret = uint64(vm.spiTransfer8(byte(a0)))
	case SPI_TRANSFER16:
		ret = uint64(vm.spiTransfer16(uint16(a0)))
	case SPI_TRANSFER32:
		ret = uint64(vm.spiTransfer32(uint32(a0)))
	case SPI_TRANSFER_BYTES:
		ret = vm.spiTransferBytes(a0, s1)
	case SPI_TRANSFER_BITS:
		ret = uint64(vm.spiTransferBits(uint32(a0), s1))
	case SPI_SET_HWCS:
		vm.spiSetHWCS(s0)
		hasRet = false
	case SPI_SET_BIT_ORDER:
		vm.spiSetBitOrder(s0)
		hasRet = false
	case SPI_SET_DATA_MODE:
		vm.spiSetDataMode(s0)
		hasRet = false
	case SPI_SET_FREQUENCY:
		vm.spiSetFrequency(s0)
		hasRet = false
	case SPI_SET_CLOCK_DIV:
		vm.spiSetClockDiv(s0)
		hasRet = false
	case SPI_GET_CLOCK_DIV:
		ret = uint64(vm.spiGetClockDiv())
	case SPI_WRITE8:
		vm.spiWrite8(byte(a0))
		hasRet = false
	case SPI_WRITE16:
		vm.spiWrite16(uint16(a0))
		hasRet = false
	case SPI_WRITE32:
		vm.spiWrite32(uint32(a0))
		hasRet = false
	case SPI_WRITE_BYTES:
		vm.spiWriteBytes(a0, s1)
		hasRet = false
	case SPI_WRITE_PIXELS:
		vm.spiWritePixels(a0, s1)
		hasRet = false
	case SPI_WRITE_PATTERN:
		vm.spiWritePattern(a0, s1, s2)
		hasRet = false

	// Runtime
	case RT_STRPASS:
		ret = vm.rtStrpass()
	case RT_YIELD:
		vm.rtYield()
		hasRet = false

	default:
		vm.panicVM("invalid system call")
		return
	}

	if hasRet {
		vm.Regs.Set(regA0, ret)
	}
}
