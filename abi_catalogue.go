package main

// Syscall IDs. A single append-only enumeration spanning every facility
// group: IO, Sys, Mem, GPIO, Int, FS, Args, I2C, Keyboard, Display, NVS,
// SPI, Runtime. Once a guest toolchain ships, these numeric values must
// never be reordered or reused — a newly defined operation is appended
// to the end of its group.
const (
	IO_PRINTS = iota
	IO_PRINTN
	IO_PRINTD
	IO_READCH
	IO_READLINE
	IO_READ
	IO_AVAILABLE
	IO_PEEK
	IO_FIND
	IO_FIND_UNTIL
	IO_SET_TIMEOUT
	IO_GET_TIMEOUT

	SYS_DELAY_MS
	SYS_MICROS
	SYS_MILLIS
	SYS_SHELLEXEC
	SYS_EXIT
	SYS_INFO_STR
	SYS_INFO_NUM
	SYS_RANDOM
	SYS_CHANGE_DIR
	SYS_WORKING_DIR

	MEM_ALLOC
	MEM_CALLOC
	MEM_REALLOC
	MEM_FREE
	MEM_SET

	GPIO_PIN_MODE
	GPIO_DIGITAL_READ
	GPIO_DIGITAL_WRITE
	GPIO_ANALOG_READ
	GPIO_ANALOG_WRITE
	GPIO_PULSE_IN
	GPIO_PULSE_IN_LONG
	GPIO_SHIFT_IN
	GPIO_SHIFT_OUT
	GPIO_TONE
	GPIO_NO_TONE

	INT_ENABLE
	INT_DISABLE
	INT_ATTACH
	INT_DETACH

	FS_MKDIR
	FS_RMDIR
	FS_DELETE
	FS_EXISTS
	FS_IS_FILE
	FS_IS_DIR
	FS_OPEN
	FS_CLOSE
	FS_AVAILABLE
	FS_FLUSH
	FS_PEEK
	FS_SEEK
	FS_SIZE
	FS_READ
	FS_WRITE_BYTE
	FS_WRITE_STRING
	FS_POSITION
	FS_PATH
	FS_NAME
	FS_NEXT
	FS_BUFSIZE
	FS_LASTWRITE
	FS_SEEK_DIR
	FS_NEXT_NAME
	FS_REWIND

	ARGS_COUNT
	ARGS_STR

	I2C_BEGIN
	I2C_END
	I2C_BEGIN_TRANSMISSION
	I2C_END_TRANSMISSION
	I2C_WRITE
	I2C_SLAVE_WRITE
	I2C_READ
	I2C_PEEK
	I2C_REQUEST
	I2C_AVAILABLE
	I2C_FLUSH
	I2C_ON_RECEIVE
	I2C_ON_REQUEST
	I2C_GET_TIMEOUT
	I2C_SET_TIMEOUT
	I2C_GET_CLOCK
	I2C_SET_CLOCK
	I2C_PINS
	I2C_BUFSIZE

	KB_LAYOUT_NAME
	KB_LAYOUT_DESC
	KB_LED_GET_NUM
	KB_LED_GET_CAPS
	KB_LED_GET_SCROLL
	KB_LED_SET_NUM
	KB_LED_SET_CAPS
	KB_LED_SET_SCROLL
	KB_NEXT_SCANCODE
	KB_DEVICE_TYPE
	KB_LOCK
	KB_UNLOCK
	KB_RESET

	DISPLAY_SCREEN_HEIGHT
	DISPLAY_SCREEN_WIDTH
	DISPLAY_VIEWPORT_HEIGHT
	DISPLAY_VIEWPORT_WIDTH
	DISPLAY_SUPPORTED_COLORS

	NVS_ERASE
	NVS_ERASE_ALL
	NVS_SET_I8
	NVS_SET_I16
	NVS_SET_I32
	NVS_SET_I64
	NVS_SET_U8
	NVS_SET_U16
	NVS_SET_U32
	NVS_SET_U64
	NVS_SET_STRING
	NVS_GET_I8
	NVS_GET_I16
	NVS_GET_I32
	NVS_GET_I64
	NVS_GET_U8
	NVS_GET_U16
	NVS_GET_U32
	NVS_GET_U64
	NVS_GET_STRING
	NVS_COMMIT
	NVS_HAS_WIFI_CONFIG
	NVS_SET_WIFI_SSID
	NVS_SET_WIFI_PWORD

	SPI_BEGIN
	SPI_END
	SPI_BEGIN_TRANSACTION
	SPI_END_TRANSACTION
	SPI_TRANSFER8
	SPI_TRANSFER16
	SPI_TRANSFER32
	SPI_TRANSFER_BYTES
	SPI_TRANSFER_BITS
	SPI_SET_HWCS
	SPI_SET_BIT_ORDER
	SPI_SET_DATA_MODE
	SPI_SET_FREQUENCY
	SPI_SET_CLOCK_DIV
	SPI_GET_CLOCK_DIV
	SPI_WRITE8
	SPI_WRITE16
	SPI_WRITE32
	SPI_WRITE_BYTES
	SPI_WRITE_PIXELS
	SPI_WRITE_PATTERN

	RT_STRPASS
	RT_YIELD

	syscallCount
)
